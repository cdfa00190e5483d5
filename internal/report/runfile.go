// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/litscreen/internal/screen"
	"github.com/meshintel/litscreen/pkg/types"
)

// Run is the on-disk representation of a completed screening run. It keeps
// everything needed to audit a run later: when it happened, what file it
// read, and which records landed in which category.
type Run struct {
	RunID     string            `json:"run_id" yaml:"run_id"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
	Source    string            `json:"source" yaml:"source"`
	Total     int               `json:"total" yaml:"total"`
	Dropped   int               `json:"dropped" yaml:"dropped"`
	Counts    []CategoryCount   `json:"counts" yaml:"counts"`
	Buckets   []CategoryRecords `json:"buckets" yaml:"buckets"`
}

// CategoryCount stores the record count for one category.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// CategoryRecords stores the records assigned to one category.
type CategoryRecords struct {
	Category string      `json:"category" yaml:"category"`
	Records  []RunRecord `json:"records" yaml:"records"`
}

// RunRecord holds the exported fields of a classified record.
type RunRecord struct {
	Title    string `json:"title" yaml:"title"`
	Authors  string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year     string `json:"year,omitempty" yaml:"year,omitempty"`
	Journal  string `json:"journal,omitempty" yaml:"journal,omitempty"`
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}

// BuildRun assembles a Run from a screening outcome. Counts covers every
// category; Buckets lists only the non-empty ones, mirroring the workbook.
func BuildRun(source string, out *screen.Outcome) Run {
	run := Run{
		RunID:     uuid.New().String(),
		Timestamp: time.Now(),
		Source:    source,
		Total:     out.Total(),
		Dropped:   out.Dropped,
	}
	for _, cat := range types.Categories() {
		run.Counts = append(run.Counts, CategoryCount{
			Category: string(cat),
			Count:    out.Count(cat),
		})
		records := out.Records(cat)
		if len(records) == 0 {
			continue
		}
		bucket := CategoryRecords{Category: string(cat)}
		for _, rec := range records {
			bucket.Records = append(bucket.Records, RunRecord{
				Title:    rec.Title(),
				Authors:  rec.Authors(),
				Year:     rec.Year(),
				Journal:  rec.Journal(),
				Abstract: rec.Abstract(),
			})
		}
		run.Buckets = append(run.Buckets, bucket)
	}
	return run
}

// WriteRunFile saves a run to path in the given format.
func WriteRunFile(path string, format types.ExportFormat, run Run) error {
	var data []byte
	var err error
	switch format {
	case types.ExportYAML:
		data, err = yaml.Marshal(&run)
	case types.ExportJSON:
		data, err = json.MarshalIndent(&run, "", "  ")
	default:
		return fmt.Errorf("unsupported export format %q: use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run file from disk. The format is
// taken from the file extension; anything but .json parses as YAML.
func ReadRunFile(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var run Run
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &run); err != nil {
			return nil, fmt.Errorf("parsing run file: %w", err)
		}
		return &run, nil
	}
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &run, nil
}
