// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// Normalize standardizes text for comparison: lowercase, leading and
// trailing whitespace stripped, inner whitespace runs collapsed to single
// spaces, punctuation removed.
func Normalize(text string) string {
	text = strings.Join(strings.Fields(strings.ToLower(text)), " ")
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Similarity returns the ratio of matching characters between the
// normalized forms of a and b, in [0, 1]. Two empty strings are fully
// similar.
func Similarity(a, b string) float64 {
	m := difflib.NewMatcher(splitChars(Normalize(a)), splitChars(Normalize(b)))
	return m.Ratio()
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
