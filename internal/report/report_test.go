// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/meshintel/litscreen/internal/screen"
	"github.com/meshintel/litscreen/pkg/types"
)

func testRecord(title, abstract string) types.Record {
	return types.Record{Fields: map[string]string{
		types.TagTitle:    title,
		types.TagAbstract: abstract,
	}}
}

// testOutcome screens a small fixed batch: one included record with all
// fields set, one duplicate of it, and one unrelated record.
func testOutcome(t *testing.T) *screen.Outcome {
	t.Helper()
	records := []types.Record{
		{Fields: map[string]string{
			types.TagTitle:    "HFpEF and fibrosis",
			types.TagAuthors:  "Smith, J.",
			types.TagYear:     "2023",
			types.TagJournal:  "Journal of Cardiac Failure",
			types.TagAbstract: "cohort study of collagen deposition",
		}},
		testRecord("HFpEF and fibrosis", "resubmitted duplicate"),
		testRecord("Kidney stones", "renal calculi"),
	}
	return screen.Screen(records, screen.DefaultRuleSet())
}

func TestWriteExcelWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	out := testOutcome(t)

	require.NoError(t, WriteExcel(path, out))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Included")
	assert.Contains(t, sheets, "Duplicates")
	assert.Contains(t, sheets, "Unrelated")
	assert.NotContains(t, sheets, "Sheet1")
	assert.NotContains(t, sheets, "Narrative_Reviews", "empty categories get no sheet")

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 7, "header plus one row per category")
	assert.Equal(t, []string{"Category", "Count"}, rows[0])
	assert.Equal(t, []string{"included", "1"}, rows[1])
	assert.Equal(t, []string{"systematic_reviews", "0"}, rows[2])
	assert.Equal(t, []string{"narrative_reviews", "0"}, rows[3])
	assert.Equal(t, []string{"duplicates", "1"}, rows[4])
	assert.Equal(t, []string{"unrelated", "1"}, rows[5])
	assert.Equal(t, []string{"methodology_lacking", "0"}, rows[6])

	detail, err := f.GetRows("Included")
	require.NoError(t, err)
	require.Len(t, detail, 2)
	assert.Equal(t, []string{"Title", "Authors", "Year", "Journal", "Abstract"}, detail[0])
	assert.Equal(t, []string{
		"HFpEF and fibrosis",
		"Smith, J.",
		"2023",
		"Journal of Cardiac Failure",
		"cohort study of collagen deposition",
	}, detail[1])
}

func TestWriteExcelSheetNamesTitleCased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	out := screen.Screen([]types.Record{
		testRecord("A systematic review of HFpEF", ""),
		testRecord("HFpEF prevalence", ""),
	}, screen.DefaultRuleSet())

	require.NoError(t, WriteExcel(path, out))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Systematic_Reviews")
	assert.Contains(t, sheets, "Methodology_Lacking")
}

func TestWriteExcelEmptyOutcome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	out := screen.Screen(nil, screen.DefaultRuleSet())

	require.NoError(t, WriteExcel(path, out))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 7)
	for _, row := range rows[1:] {
		assert.Equal(t, "0", row[1])
	}
}

func TestWriteExcelOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	first := screen.Screen([]types.Record{
		testRecord("HFpEF and fibrosis", "cohort study of collagen deposition"),
	}, screen.DefaultRuleSet())
	require.NoError(t, WriteExcel(path, first))

	second := screen.Screen([]types.Record{
		testRecord("Kidney stones", "renal calculi"),
	}, screen.DefaultRuleSet())
	require.NoError(t, WriteExcel(path, second))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Unrelated")
	assert.NotContains(t, sheets, "Included")
}

func TestBuildRun(t *testing.T) {
	out := testOutcome(t)
	run := BuildRun("articles.txt", out)

	_, err := uuid.Parse(run.RunID)
	require.NoError(t, err, "run ID must be a valid UUID")
	assert.Equal(t, "articles.txt", run.Source)
	assert.WithinDuration(t, time.Now(), run.Timestamp, 5*time.Second)
	assert.Equal(t, out.Total(), run.Total)
	assert.Equal(t, out.Dropped, run.Dropped)

	require.Len(t, run.Counts, 6)
	for _, cc := range run.Counts {
		assert.Equal(t, out.Count(types.Category(cc.Category)), cc.Count)
	}

	// Only non-empty categories appear as buckets.
	require.Len(t, run.Buckets, 3)
	for _, bucket := range run.Buckets {
		assert.Len(t, bucket.Records, out.Count(types.Category(bucket.Category)))
	}
}

func TestRunFileRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		format types.ExportFormat
		ext    string
	}{
		{"yaml", types.ExportYAML, ".yaml"},
		{"json", types.ExportJSON, ".json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "run"+tt.ext)
			run := BuildRun("articles.txt", testOutcome(t))

			require.NoError(t, WriteRunFile(path, tt.format, run))

			got, err := ReadRunFile(path)
			require.NoError(t, err)
			assert.Equal(t, run.RunID, got.RunID)
			assert.Equal(t, run.Source, got.Source)
			assert.Equal(t, run.Total, got.Total)
			assert.Equal(t, run.Counts, got.Counts)
			assert.Equal(t, run.Buckets, got.Buckets)
			assert.WithinDuration(t, run.Timestamp, got.Timestamp, time.Second)
		})
	}
}

func TestWriteRunFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.xml")
	run := BuildRun("articles.txt", testOutcome(t))

	err := WriteRunFile(path, types.ExportFormat("xml"), run)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")

	err = WriteRunFile(path, types.ExportNone, run)
	require.Error(t, err)
}
