// Package icon picks one of a closed set of vector icons for a free-text image
// description.
package icon

import (
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

type category struct {
	tag      slide.Icon
	triggers []string
}

// Declaration order is the tie-break: the first category with a hit wins.
var categories = []category{
	{slide.IconEnvironment, []string{"climate", "global warming", "environment", "earth", "planet", "temperature"}},
	{slide.IconTechnology, []string{"technology", "digital", "computer", "internet", "data", "tech"}},
	{slide.IconBusiness, []string{"business", "professional", "corporate", "meeting", "office"}},
	{slide.IconHealth, []string{"health", "medical", "medicine", "hospital", "doctor"}},
	{slide.IconEducation, []string{"education", "learning", "school", "study", "knowledge"}},
	{slide.IconFinance, []string{"money", "finance", "economy", "cost", "price", "budget"}},
}

// Classify maps a description to an icon tag. It never fails: descriptions
// matching no category get slide.IconGeneric.
func Classify(description string) slide.Icon {
	tokens := tokenize(description)
	for _, c := range categories {
		for _, trigger := range c.triggers {
			if containsPhrase(tokens, strings.Fields(trigger)) {
				return c.tag
			}
		}
	}
	return slide.IconGeneric
}

// tokenize lower-cases and splits on whitespace, trimming punctuation around
// each token so "climate," still matches "climate".
func tokenize(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// containsPhrase reports whether phrase occurs as a consecutive run in tokens.
func containsPhrase(tokens, phrase []string) bool {
	if len(phrase) == 0 {
		return false
	}
outer:
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		for j, p := range phrase {
			if tokens[i+j] != p {
				continue outer
			}
		}
		return true
	}
	return false
}
