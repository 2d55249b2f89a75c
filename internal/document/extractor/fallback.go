package extractor

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"productivity-calendar/pkg/datemath"
)

type keywordRule struct {
	re       *regexp.Regexp
	category Category
}

func keyword(word string, c Category) keywordRule {
	return keywordRule{re: regexp.MustCompile(`(?i)\b` + word + `s?\b`), category: c}
}

// Checked in order; specific kinds come before the generic due/deadline words.
var keywordRules = []keywordRule{
	keyword("interview", CategoryInterview),
	keyword("midterm", CategoryExam),
	keyword("final exam", CategoryExam),
	keyword("exam", CategoryExam),
	keyword("quiz(?:ze)?", CategoryQuiz),
	keyword("test", CategoryExam),
	keyword("presentation", CategoryPresentation),
	keyword("paper", CategoryPaper),
	keyword("essay", CategoryPaper),
	keyword("project", CategoryProject),
	keyword("assignment", CategoryAssignment),
	keyword("homework", CategoryAssignment),
	keyword("problem set", CategoryAssignment),
	keyword("reading", CategoryReading),
	keyword("due", CategoryDeadline),
	keyword("deadline", CategoryDeadline),
	keyword("submit", CategoryDeadline),
	keyword("submission", CategoryDeadline),
}

var connectorWords = map[string]bool{
	"due": true, "deadline": true, "on": true, "by": true, "date": true,
	"is": true, "at": true, "before": true, "submit": true, "until": true,
}

func matchKeyword(line string) (Category, bool) {
	for _, r := range keywordRules {
		if r.re.MatchString(line) {
			return r.category, true
		}
	}
	return "", false
}

// fallback scans text line by line. A line with a deadline keyword yields a
// record when it carries a recognizable date, or when the next line has a
// date and no keyword of its own. Lines whose date cannot be resolved are
// skipped.
func (e *Extractor) fallback(text string, opts Options, now time.Time) []Deadline {
	lines := strings.Split(text, "\n")
	var out []Deadline
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		category, ok := matchKeyword(line)
		if !ok {
			continue
		}

		title := ""
		m, found := e.dates.Find(line, now, opts.CourseStart)
		if found {
			title = titleFrom(line, &m)
		} else if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if _, own := matchKeyword(next); own {
				continue
			}
			if m, found = e.dates.Find(next, now, opts.CourseStart); found {
				title = titleFrom(line, nil)
				line = line + " " + next
				i++
			}
		}
		if !found {
			continue
		}

		if title == "" {
			title = defaultTitle(category)
		}
		out = append(out, Deadline{
			Title:          title,
			Date:           e.dates.EndOfDay(m.Date),
			AllDay:         true,
			Category:       category,
			Description:    truncateRunes(line, maxDescriptionRunes),
			EstimatedHours: e.cfg.DefaultEstimatedHours,
		})
	}
	return out
}

// titleFrom drops the date and keeps the label before a colon when there is one.
func titleFrom(line string, m *datemath.Match) string {
	s := line
	if m != nil {
		s = line[:m.Start] + " " + line[m.End:]
	}
	if i := strings.Index(s, ":"); i > 0 {
		if head := cleanTitle(s[:i]); head != "" {
			return head
		}
	}
	return cleanTitle(s)
}

func cleanTitle(s string) string {
	fields := strings.Fields(s)
	isNoise := func(f string) bool {
		w := strings.ToLower(strings.TrimFunc(f, isTitlePunct))
		return w == "" || connectorWords[w]
	}
	for len(fields) > 0 && isNoise(fields[0]) {
		fields = fields[1:]
	}
	for len(fields) > 0 && isNoise(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	title := strings.TrimFunc(strings.Join(fields, " "), isTitlePunct)
	return truncateRunes(title, maxTitleRunes)
}

func isTitlePunct(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("-–—*•:;,.()[]", r)
}

func defaultTitle(c Category) string {
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
