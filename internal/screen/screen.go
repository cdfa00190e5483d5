// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"strings"

	"github.com/meshintel/litscreen/pkg/types"
)

// Outcome collects the classified records of a screening run. Buckets maps
// each category to the records assigned to it, in input order. Dropped
// counts records discarded before classification for having no title.
type Outcome struct {
	Buckets map[types.Category][]types.Record
	Dropped int
}

func (o *Outcome) add(cat types.Category, rec types.Record) {
	o.Buckets[cat] = append(o.Buckets[cat], rec)
}

// Records returns the records assigned to cat, in input order.
func (o *Outcome) Records(cat types.Category) []types.Record {
	return o.Buckets[cat]
}

// Count returns the number of records assigned to cat.
func (o *Outcome) Count(cat types.Category) int {
	return len(o.Buckets[cat])
}

// Total returns the number of classified records across all categories.
// Dropped records are not counted.
func (o *Outcome) Total() int {
	n := 0
	for _, recs := range o.Buckets {
		n += len(recs)
	}
	return n
}

// Screen classifies each record into exactly one category. Checks run in a
// fixed order and the first that applies wins:
//
//  1. records with an empty title are dropped,
//  2. a title already seen (case-insensitive) is a duplicate,
//  3. "systematic review" in the title marks a systematic review,
//  4. "review" in the title marks a narrative review,
//  5. no condition term anywhere marks the record unrelated,
//  6. a pathway match and a methodology match together include the record,
//  7. everything else lacks methodology.
//
// Duplicate detection compares exact lowercased titles only; the abstract
// plays no part in it.
func Screen(records []types.Record, rules RuleSet) *Outcome {
	out := &Outcome{Buckets: make(map[types.Category][]types.Record)}
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		title := strings.ToLower(rec.Title())
		if title == "" {
			out.Dropped++
			continue
		}
		if _, dup := seen[title]; dup {
			out.add(types.CategoryDuplicates, rec)
			continue
		}
		seen[title] = struct{}{}

		if strings.Contains(title, "systematic review") {
			out.add(types.CategorySystematicReviews, rec)
			continue
		}
		if strings.Contains(title, "review") {
			out.add(types.CategoryNarrativeReviews, rec)
			continue
		}
		if !rules.MatchesCondition(rec) {
			out.add(types.CategoryUnrelated, rec)
			continue
		}
		if rules.MatchesPathway(rec) && rules.MatchesMethodology(rec) {
			out.add(types.CategoryIncluded, rec)
		} else {
			out.add(types.CategoryMethodologyLacking, rec)
		}
	}
	return out
}
