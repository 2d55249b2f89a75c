package extractor

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"productivity-calendar/pkg/llmprovider"
)

var (
	jsonArray  = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
	jsonObject = regexp.MustCompile(`\{[^{}]*\}`)
	leadingNum = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)
)

// item is one record as the model writes it.
type item struct {
	Title          string `json:"title"`
	Date           string `json:"date"`
	Deadline       string `json:"deadline"`
	DueDate        string `json:"due_date"`
	Type           string `json:"type"`
	Description    string `json:"description"`
	EstimatedHours hours  `json:"estimated_hours"`
}

func (it item) dateText() string {
	for _, s := range []string{it.Date, it.DueDate, it.Deadline} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

func (it item) wellFormed() bool {
	return strings.TrimSpace(it.Title) != "" && it.dateText() != ""
}

// hours accepts 3, 2.5, "3", "4 hours" and null.
type hours float64

func (h *hours) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*h = 0
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		m := leadingNum.FindStringSubmatch(s)
		if m == nil {
			*h = 0
			return nil
		}
		v, _ := strconv.ParseFloat(m[1], 64)
		*h = hours(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*h = hours(v)
	return nil
}

// envelope covers answers wrapped in an object instead of a bare array.
type envelope struct {
	Deadlines []item `json:"deadlines"`
	Items     []item `json:"items"`
}

// parseItems recovers records from a model answer. Each strategy runs only
// when the previous one produced no well-formed record: the sanitized answer
// as a whole, the first array substring, then every flat object substring.
func parseItems(raw string) []item {
	if items := decodeList(llmprovider.SanitizeJSON(raw)); len(items) > 0 {
		return items
	}

	if m := jsonArray.FindString(raw); m != "" {
		if items := decodeList(m); len(items) > 0 {
			return items
		}
	}

	var items []item
	for _, m := range jsonObject.FindAllString(raw, -1) {
		var it item
		if err := json.Unmarshal([]byte(m), &it); err != nil {
			continue
		}
		if it.wellFormed() {
			items = append(items, it)
		}
	}
	return items
}

func decodeList(s string) []item {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var list []item
	if s[0] == '[' {
		if err := json.Unmarshal([]byte(s), &list); err != nil {
			return nil
		}
	} else {
		var env envelope
		if err := json.Unmarshal([]byte(s), &env); err != nil {
			return nil
		}
		list = append(env.Deadlines, env.Items...)
	}
	return wellFormed(list)
}

func wellFormed(list []item) []item {
	out := list[:0]
	for _, it := range list {
		if it.wellFormed() {
			out = append(out, it)
		}
	}
	return out
}
