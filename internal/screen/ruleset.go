// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screen classifies bibliographic records into screening categories
// using keyword rules over titles and abstracts.
package screen

import (
	"strings"

	"github.com/meshintel/litscreen/pkg/types"
)

// TermGroup is a named cluster of related keywords. A group matches when at
// least one of its terms occurs in the screening text.
type TermGroup struct {
	Name  string   `json:"name" yaml:"name"`
	Terms []string `json:"terms" yaml:"terms"`
}

// RuleSet holds the keyword rules a screening run applies. Condition terms
// identify the disease of interest; pathway and methodology groups gate
// inclusion. Matching is plain case-insensitive substring containment.
type RuleSet struct {
	Condition   []string    `json:"condition" yaml:"condition"`
	Pathway     []TermGroup `json:"pathway" yaml:"pathway"`
	Methodology []TermGroup `json:"methodology" yaml:"methodology"`
}

// DefaultRuleSet returns the built-in rules for HFpEF mechanism screening.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Condition: []string{
			"hfpef",
			"heart failure with preserved ejection fraction",
			"diastolic heart failure",
		},
		Pathway: []TermGroup{
			{Name: "metabolism", Terms: []string{"fatty acid", "glucose", "metabolic", "oxidation"}},
			{Name: "inflammation", Terms: []string{"inflammation", "cytokine", "immune"}},
			{Name: "fibrosis", Terms: []string{"fibrosis", "collagen", "extracellular matrix"}},
		},
		Methodology: []TermGroup{
			{Name: "clinical", Terms: []string{"patient", "clinical trial", "cohort"}},
			{Name: "animal", Terms: []string{"mouse", "rat", "animal model"}},
			{Name: "molecular", Terms: []string{"cell culture", "protein expression", "gene expression"}},
		},
	}
}

// MatchesCondition reports whether any condition term occurs in the
// record's title or abstract.
func (rs RuleSet) MatchesCondition(rec types.Record) bool {
	text := screeningText(rec)
	for _, term := range rs.Condition {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// MatchesPathway reports whether any pathway group matches the record.
func (rs RuleSet) MatchesPathway(rec types.Record) bool {
	return anyGroupMatches(rs.Pathway, screeningText(rec))
}

// MatchesMethodology reports whether any methodology group matches the record.
func (rs RuleSet) MatchesMethodology(rec types.Record) bool {
	return anyGroupMatches(rs.Methodology, screeningText(rec))
}

func anyGroupMatches(groups []TermGroup, text string) bool {
	for _, group := range groups {
		for _, term := range group.Terms {
			if strings.Contains(text, term) {
				return true
			}
		}
	}
	return false
}

// screeningText is the lowercased concatenation of title and abstract,
// the text every rule is evaluated against.
func screeningText(rec types.Record) string {
	return strings.ToLower(rec.Title() + " " + rec.Abstract())
}
