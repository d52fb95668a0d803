package normalizer

import "strings"

// Substring matches, so "end" also hits "Trends" and "Agenda". Kept as is.
var endingKeywords = []string{
	"questions", "question", "q&a", "thank you", "thanks",
	"contact", "conclusion", "summary", "end", "closing",
	"discussion", "next steps", "takeaways", "wrap up",
	"final thoughts", "any questions",
}

var endingExact = []string{"questions?", "discussion?", "thanks!", "conclusion"}

// IsEndingTitle reports whether a slide title reads like a closing slide.
func IsEndingTitle(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))

	for _, kw := range endingKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	for _, exact := range endingExact {
		if t == exact {
			return true
		}
	}
	return false
}
