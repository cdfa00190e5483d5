// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the litscreen pipeline.
package types

import "strings"

// Tag markers for the well-known fields of an EndNote-style tagged export.
// A marker is a percent sign followed by one uppercase letter at the start
// of a line.
const (
	TagTitle    = "%T"
	TagAuthors  = "%A"
	TagYear     = "%D"
	TagJournal  = "%J"
	TagAbstract = "%X"
)

// Record holds one bibliographic entry as a mapping from tag markers to
// accumulated field text. Repeated tags concatenate with a single space;
// unknown tags are stored verbatim and ignored downstream. Records are
// built by the parser and treated as immutable afterwards.
type Record struct {
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// Field returns the text stored under tag, or "" when the tag is absent.
func (r Record) Field(tag string) string {
	return r.Fields[tag]
}

// Title returns the record's title field.
func (r Record) Title() string { return r.Field(TagTitle) }

// Authors returns the record's author field.
func (r Record) Authors() string { return r.Field(TagAuthors) }

// Year returns the record's publication year field.
func (r Record) Year() string { return r.Field(TagYear) }

// Journal returns the record's journal field.
func (r Record) Journal() string { return r.Field(TagJournal) }

// Abstract returns the record's abstract field.
func (r Record) Abstract() string { return r.Field(TagAbstract) }

// Category is one of the six screening outcomes. Every record with a
// non-empty title lands in exactly one category; the first matching rule
// wins.
type Category string

const (
	CategoryIncluded           Category = "included"
	CategorySystematicReviews  Category = "systematic_reviews"
	CategoryNarrativeReviews   Category = "narrative_reviews"
	CategoryDuplicates         Category = "duplicates"
	CategoryUnrelated          Category = "unrelated"
	CategoryMethodologyLacking Category = "methodology_lacking"
)

// Categories returns all screening categories in report order.
func Categories() []Category {
	return []Category{
		CategoryIncluded,
		CategorySystematicReviews,
		CategoryNarrativeReviews,
		CategoryDuplicates,
		CategoryUnrelated,
		CategoryMethodologyLacking,
	}
}

// Title returns the display form of the category used for sheet names and
// console summaries: each underscore-separated word capitalized, with the
// underscores kept (e.g. "systematic_reviews" becomes "Systematic_Reviews").
func (c Category) Title() string {
	parts := strings.Split(string(c), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "_")
}
