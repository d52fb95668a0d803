package synthesizer

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nguyentantai21042004/slide-flow/internal/llm"
)

// FallbackTitle is used when neither the model nor the transcript yields a title.
const FallbackTitle = "Voice Recording Presentation"

const (
	maxTitleWords   = 6
	fallbackKeyword = 3
	minKeywordLen   = 4
)

var genericTerms = []string{"presentation", "slideshow", "slides"}

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "of": {}, "with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "a": {}, "an": {},
}

func (s *implSynthesizer) DeriveTitle(ctx context.Context, transcript string) string {
	excerpt, _, _ := truncateWords(transcript, s.cfg.MaxTitleWords)

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	raw, err := s.model.Generate(callCtx, llm.Request{
		Model:           s.cfg.Model,
		Prompt:          buildTitlePrompt(excerpt),
		MaxOutputTokens: s.cfg.TitleMaxTokens,
		Temperature:     s.cfg.TitleTemperature,
	})
	if err != nil {
		s.logger.Error(ctx, "Error generating presentation title: %v", err)
		return FallbackTitle
	}

	title := strings.Trim(strings.TrimSpace(raw), `"'`)
	if !acceptableTitle(title) {
		title = keywordTitle(excerpt)
	}

	s.logger.Info(ctx, "Generated presentation title: %s", title)
	return title
}

func acceptableTitle(title string) bool {
	n := len(strings.Fields(title))
	if n == 0 || n > maxTitleWords {
		return false
	}
	return !containsGeneric(strings.ToLower(title))
}

func containsGeneric(lower string) bool {
	for _, g := range genericTerms {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}

// keywordTitle title-cases the first few meaningful words of text.
func keywordTitle(text string) string {
	var picked []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if utf8.RuneCountInString(w) < minKeywordLen {
			continue
		}
		if _, stop := stopWords[w]; stop || containsGeneric(w) {
			continue
		}
		picked = append(picked, w)
		if len(picked) == fallbackKeyword {
			break
		}
	}
	if len(picked) == 0 {
		return FallbackTitle
	}
	return cases.Title(language.English).String(strings.Join(picked, " "))
}
