package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDate   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashDate = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	dashDate  = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{4})\b`)
	monthDate = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sept?(?:ember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`)
	weekN     = regexp.MustCompile(`(?i)\bweek\s+(\d{1,2})\b`)
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDate resolves a single date string such as "2024-03-15",
// "2024-03-15T17:00:00Z", "03/15/2024", "March 15, 2024" or "next friday".
// allDay is false only when the input carried a time of day.
func (p *Parser) ParseDate(s string, base time.Time) (t time.Time, allDay bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, fmt.Errorf("%w: empty", ErrUnrecognized)
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return ts.In(p.location), false, nil
		}
	}

	if m, ok := p.Find(s, base, nil); ok {
		return m.Date, true, nil
	}

	rel, err := p.Parse(s, base)
	if err != nil {
		return time.Time{}, false, err
	}
	return rel, true, nil
}

// Find returns the first date in text, trying the patterns in a fixed order:
// ISO, MM/DD/YYYY, MM-DD-YYYY, "Month DD[, YYYY]", then "Week N".
// A month name without a year takes the year of ref (courseStart when given)
// and rolls to the next year when that lands before ref's day.
// "Week N" resolves only against courseStart; without it the match is ignored.
func (p *Parser) Find(text string, ref time.Time, courseStart *time.Time) (Match, bool) {
	if m, ok := p.findNumeric(text, isoDate, PatternISO, 1, 2, 3); ok {
		return m, true
	}
	if m, ok := p.findNumeric(text, slashDate, PatternSlash, 3, 1, 2); ok {
		return m, true
	}
	if m, ok := p.findNumeric(text, dashDate, PatternDash, 3, 1, 2); ok {
		return m, true
	}

	anchor := ref
	if courseStart != nil {
		anchor = *courseStart
	}
	if m, ok := p.findMonthName(text, anchor); ok {
		return m, true
	}

	if courseStart != nil {
		if m, ok := p.findWeek(text, *courseStart); ok {
			return m, true
		}
	}
	return Match{}, false
}

// WeekStart returns the first day of course week n (1-based).
func (p *Parser) WeekStart(courseStart time.Time, n int) (time.Time, error) {
	if n < 1 {
		return time.Time{}, fmt.Errorf("%w: week %d", ErrUnrecognized, n)
	}
	return p.startOfDay(courseStart).AddDate(0, 0, (n-1)*7), nil
}

func (p *Parser) findNumeric(text string, re *regexp.Regexp, pattern Pattern, yi, mi, di int) (Match, bool) {
	for _, idx := range re.FindAllStringSubmatchIndex(text, -1) {
		year := atoiGroup(text, idx, yi)
		month := atoiGroup(text, idx, mi)
		day := atoiGroup(text, idx, di)
		if d, ok := p.date(year, month, day); ok {
			return Match{Date: d, Pattern: pattern, Start: idx[0], End: idx[1]}, true
		}
	}
	return Match{}, false
}

func (p *Parser) findMonthName(text string, anchor time.Time) (Match, bool) {
	anchorDay := p.startOfDay(anchor)
	for _, idx := range monthDate.FindAllStringSubmatchIndex(text, -1) {
		month, ok := monthIndex(strings.ToLower(text[idx[2]:idx[3]]))
		if !ok {
			continue
		}
		day := atoiGroup(text, idx, 2)

		if idx[6] >= 0 {
			if d, ok := p.date(atoiGroup(text, idx, 3), month, day); ok {
				return Match{Date: d, Pattern: PatternMonthName, Start: idx[0], End: idx[1]}, true
			}
			continue
		}

		d, ok := p.date(anchorDay.Year(), month, day)
		if !ok {
			continue
		}
		if d.Before(anchorDay) {
			if d, ok = p.date(anchorDay.Year()+1, month, day); !ok {
				continue
			}
		}
		return Match{Date: d, Pattern: PatternMonthName, Start: idx[0], End: idx[1]}, true
	}
	return Match{}, false
}

func (p *Parser) findWeek(text string, courseStart time.Time) (Match, bool) {
	for _, idx := range weekN.FindAllStringSubmatchIndex(text, -1) {
		d, err := p.WeekStart(courseStart, atoiGroup(text, idx, 1))
		if err != nil {
			continue
		}
		return Match{Date: d, Pattern: PatternWeek, Start: idx[0], End: idx[1]}, true
	}
	return Match{}, false
}

// date builds midnight of y-m-d, rejecting values time.Date would normalize.
func (p *Parser) date(y, m, d int) (time.Time, bool) {
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, p.location)
	if t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func atoiGroup(text string, idx []int, group int) int {
	start, end := idx[2*group], idx[2*group+1]
	if start < 0 {
		return 0
	}
	n, _ := strconv.Atoi(text[start:end])
	return n
}

func monthIndex(name string) (int, bool) {
	if len(name) < 3 {
		return 0, false
	}
	switch name[:3] {
	case "jan":
		return 1, true
	case "feb":
		return 2, true
	case "mar":
		return 3, true
	case "apr":
		return 4, true
	case "may":
		return 5, true
	case "jun":
		return 6, true
	case "jul":
		return 7, true
	case "aug":
		return 8, true
	case "sep":
		return 9, true
	case "oct":
		return 10, true
	case "nov":
		return 11, true
	case "dec":
		return 12, true
	}
	return 0, false
}
