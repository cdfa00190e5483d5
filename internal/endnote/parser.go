// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package endnote parses EndNote-style tagged text exports into records.
package endnote

import (
	"strings"

	"github.com/meshintel/litscreen/pkg/types"
)

// Parse converts the raw text of a tagged export into an ordered sequence
// of records. Each line is whitespace-trimmed before inspection. A line
// beginning with a tag marker (percent sign plus one uppercase letter)
// starts or continues that field: a new tag stores the trimmed remainder,
// a repeated tag appends it after a single space. Any other non-blank line
// is continuation text for the most recent tag; lines seen before any tag
// are discarded. A blank line closes the current record, and a final
// record is flushed at end of input. The current tag carries across record
// boundaries, so a continuation line at the top of the next record
// attaches to the same tag key there. Field values are stored verbatim
// with no validation.
func Parse(content string) []types.Record {
	var records []types.Record
	fields := map[string]string{}
	currentTag := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			if len(fields) > 0 {
				records = append(records, types.Record{Fields: fields})
				fields = map[string]string{}
			}
			continue
		}

		value := line
		if isTagMarker(line) {
			currentTag = line[:2]
			value = strings.TrimSpace(line[2:])
		}
		if currentTag == "" {
			continue
		}

		if existing, ok := fields[currentTag]; ok {
			fields[currentTag] = existing + " " + value
		} else {
			fields[currentTag] = value
		}
	}

	if len(fields) > 0 {
		records = append(records, types.Record{Fields: fields})
	}
	return records
}

// isTagMarker reports whether line starts with a two-character tag marker:
// '%' followed by an uppercase ASCII letter.
func isTagMarker(line string) bool {
	return len(line) >= 2 && line[0] == '%' && line[1] >= 'A' && line[1] <= 'Z'
}
