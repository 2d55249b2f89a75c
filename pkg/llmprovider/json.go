package llmprovider

import (
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// SanitizeJSON strips markdown fences and surrounding prose that models
// often add around a JSON answer.
func SanitizeJSON(text string) string {
	if m := fencedBlock.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text[start:])
	}
	return strings.TrimSpace(text[start : end+1])
}
