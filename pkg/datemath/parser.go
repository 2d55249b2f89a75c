package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves date expressions to midnight in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "America/New_York".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	offsetExpr  = regexp.MustCompile(`^(?:in )?(\d+|an?|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve) (day|week|month)s?(?: from now)?$`)
	weekdayExpr = regexp.MustCompile(`^(?:(this|next) )?([a-z]+)$`)
	spaces      = regexp.MustCompile(`\s+`)
)

var wordNumbers = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// Parse resolves a relative expression against baseTime. Supported forms:
// today, tomorrow, yesterday, "in 3 days", "two weeks from now",
// "friday", "this friday", "next friday", "next week", "next month",
// "end of week" and "end of month". Unknown input returns baseTime and an
// error wrapping ErrUnrecognized.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	expr := spaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(relative)), " ")
	expr = strings.TrimSuffix(expr, ".")
	day := p.startOfDay(baseTime)

	switch expr {
	case "today", "tonight":
		return day, nil
	case "tomorrow":
		return day.AddDate(0, 0, 1), nil
	case "yesterday":
		return day.AddDate(0, 0, -1), nil
	case "next week":
		return day.AddDate(0, 0, 7), nil
	case "next month":
		return day.AddDate(0, 1, 0), nil
	case "end of week", "end of the week", "end of this week", "eow":
		return day.AddDate(0, 0, daysUntil(day.Weekday(), time.Sunday, true)), nil
	case "end of month", "end of the month", "end of this month", "eom":
		return time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, p.location), nil
	}

	if m := offsetExpr.FindStringSubmatch(expr); m != nil {
		return p.offset(day, m[1], m[2]), nil
	}

	if m := weekdayExpr.FindStringSubmatch(expr); m != nil {
		if wd, ok := weekdays[m[2]]; ok {
			// "next" never resolves to today; bare and "this" may.
			return day.AddDate(0, 0, daysUntil(day.Weekday(), wd, m[1] != "next")), nil
		}
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

func (p *Parser) offset(day time.Time, amount, unit string) time.Time {
	n, ok := wordNumbers[amount]
	if !ok {
		n, _ = strconv.Atoi(amount)
	}
	switch unit {
	case "week":
		return day.AddDate(0, 0, 7*n)
	case "month":
		return day.AddDate(0, n, 0)
	default:
		return day.AddDate(0, 0, n)
	}
}

// daysUntil counts days from one weekday forward to another, 0..6 when
// includeToday is set and 1..7 otherwise.
func daysUntil(from, to time.Weekday, includeToday bool) int {
	d := (int(to) - int(from) + 7) % 7
	if d == 0 && !includeToday {
		d = 7
	}
	return d
}

// Location returns the timezone dates are resolved in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the day that starts at startOfDay.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
