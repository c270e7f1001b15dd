package engine

import "strings"

// Sanitize strips a single markdown fence wrapper from raw model text so the
// remainder can be fed to the JSON parser. At most one leading "```json" or
// "```" marker and one trailing "```" are removed; content between fences is
// never altered, and unfenced text passes through untouched.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	if strings.HasSuffix(text, "```") {
		text = text[:len(text)-len("```")]
	}
	return strings.TrimSpace(text)
}
