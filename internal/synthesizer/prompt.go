package synthesizer

import (
	"fmt"
	"strings"
)

const slidePrompt = `Convert this transcript into 5-6 presentation slides with enhanced visual design and organization.

TRANSCRIPT: %s

Return JSON with this exact structure:
{
  "slides": [
    {
      "slide_number": 1,
      "type": "title",
      "title": "Main Title",
      "subtitle": "Subtitle",
      "image_prompt": "Professional image description for title slide",
      "layout": "centered",
      "speaker_notes": "Welcome notes"
    },
    {
      "slide_number": 2,
      "type": "content",
      "title": "Topic",
      "content": ["Point 1", "Point 2", "Point 3"],
      "image_prompt": "Relevant image description for this topic",
      "layout": "text_with_image",
      "speaker_notes": "Explanation"
    },
    {
      "slide_number": 3,
      "type": "comparison",
      "title": "Comparison Title",
      "left_column": {
        "title": "Left Side Title",
        "content": ["Point 1", "Point 2", "Point 3"]
      },
      "right_column": {
        "title": "Right Side Title",
        "content": ["Point 1", "Point 2", "Point 3"]
      },
      "layout": "two_column",
      "speaker_notes": "Compare and contrast"
    },
    {
      "slide_number": 6,
      "type": "ending",
      "title": "Questions?",
      "subtitle": "Thank you for your attention",
      "image_prompt": "Professional closing image",
      "layout": "centered",
      "speaker_notes": "Open for questions"
    }
  ]
}

SLIDE TYPES & LAYOUTS:
- "title": Opening slide (layout: "centered")
- "content": Main content with bullets (layout: "text_with_image" or "text_only")
- "comparison": Two-column comparison (layout: "two_column")
- "ending": Closing slides (layout: "centered")

IMAGE PROMPTS: Generate appropriate SVG icon descriptions for each slide (no actual images, just descriptions for SVG icons that match the content)

LAYOUT GUIDELINES:
- Use "two_column" for comparisons, pros/cons, before/after
- Use "text_with_image" for content slides with relevant imagery
- Use "centered" for title and ending slides
- Use "text_only" for content-heavy slides

Generate 5-6 slides total with appropriate layouts and visual elements. Return only JSON.`

const titlePrompt = `Based on this transcript excerpt, create a concise, professional presentation title (maximum 6 words):

TRANSCRIPT: %s

Requirements:
- Maximum 6 words
- Professional and clear
- Captures the main topic/theme
- No generic terms like "presentation" or "slideshow"

Return only the title, nothing else.`

func buildSlidePrompt(transcript string) string {
	return fmt.Sprintf(slidePrompt, transcript)
}

func buildTitlePrompt(excerpt string) string {
	return fmt.Sprintf(titlePrompt, excerpt)
}

// truncateWords keeps the first limit whitespace-separated tokens. The second
// return value is the original token count.
func truncateWords(text string, limit int) (string, int, bool) {
	words := strings.Fields(text)
	if limit <= 0 || len(words) <= limit {
		return text, len(words), false
	}
	return strings.Join(words[:limit], " "), len(words), true
}
