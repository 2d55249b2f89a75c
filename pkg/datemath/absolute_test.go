package datemath_test

import (
	"errors"
	"testing"
	"time"

	"productivity-calendar/pkg/datemath"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFind(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	ref := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	courseStart := day(2024, 1, 15)

	tests := []struct {
		name        string
		text        string
		courseStart *time.Time
		want        time.Time
		wantPattern datemath.Pattern
		wantText    string
		wantOK      bool
	}{
		{
			name:        "slash",
			text:        "Assignment 1: Due 03/15/2024",
			want:        day(2024, 3, 15),
			wantPattern: datemath.PatternSlash,
			wantText:    "03/15/2024",
			wantOK:      true,
		},
		{
			name:        "dash",
			text:        "Project proposal 4-2-2024",
			want:        day(2024, 4, 2),
			wantPattern: datemath.PatternDash,
			wantText:    "4-2-2024",
			wantOK:      true,
		},
		{
			name:        "iso wins over month name",
			text:        "Quiz on March 3 (moved to 2024-03-05)",
			want:        day(2024, 3, 5),
			wantPattern: datemath.PatternISO,
			wantText:    "2024-03-05",
			wantOK:      true,
		},
		{
			name:        "month name with year",
			text:        "Midterm Exam - March 10, 2024",
			want:        day(2024, 3, 10),
			wantPattern: datemath.PatternMonthName,
			wantText:    "March 10, 2024",
			wantOK:      true,
		},
		{
			name:        "abbreviated month without year",
			text:        "Paper due Sept. 9th",
			want:        day(2024, 9, 9),
			wantPattern: datemath.PatternMonthName,
			wantText:    "Sept. 9th",
			wantOK:      true,
		},
		{
			name:        "month already passed rolls over",
			text:        "Final exam Jan 10",
			want:        day(2025, 1, 10),
			wantPattern: datemath.PatternMonthName,
			wantText:    "Jan 10",
			wantOK:      true,
		},
		{
			name:        "week with course start",
			text:        "Week 3 reading response",
			courseStart: &courseStart,
			want:        day(2024, 1, 29),
			wantPattern: datemath.PatternWeek,
			wantText:    "Week 3",
			wantOK:      true,
		},
		{
			name:   "week without course start is skipped",
			text:   "Week 3 reading response",
			wantOK: false,
		},
		{
			name:   "impossible calendar date",
			text:   "Due 02/30/2024",
			wantOK: false,
		},
		{
			name:   "no date",
			text:   "Homework policy: late work loses 10%",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Find(tt.text, ref, tt.courseStart)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("Find(%q) date = %v, want %v", tt.text, got.Date, tt.want)
			}
			if got.Pattern != tt.wantPattern {
				t.Errorf("Find(%q) pattern = %q, want %q", tt.text, got.Pattern, tt.wantPattern)
			}
			if s := tt.text[got.Start:got.End]; s != tt.wantText {
				t.Errorf("Find(%q) matched %q, want %q", tt.text, s, tt.wantText)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      string
		want       time.Time
		wantAllDay bool
		wantErr    bool
	}{
		{name: "iso date", input: "2024-03-15", want: day(2024, 3, 15), wantAllDay: true},
		{name: "rfc3339", input: "2024-03-15T17:00:00Z", want: time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC)},
		{name: "local timestamp", input: "2024-03-15T09:30:00", want: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)},
		{name: "us date", input: "03/15/2024", want: day(2024, 3, 15), wantAllDay: true},
		{name: "relative", input: "next friday", want: day(2024, 5, 3), wantAllDay: true},
		{name: "empty", input: "  ", wantErr: true},
		{name: "garbage", input: "sometime soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, allDay, err := parser.ParseDate(tt.input, base)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrUnrecognized) {
					t.Fatalf("ParseDate(%q) error = %v, want ErrUnrecognized", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) || allDay != tt.wantAllDay {
				t.Errorf("ParseDate(%q) = %v allDay=%v, want %v allDay=%v", tt.input, got, allDay, tt.want, tt.wantAllDay)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	start := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	got, err := parser.WeekStart(start, 1)
	if err != nil || !got.Equal(day(2024, 1, 15)) {
		t.Errorf("WeekStart(1) = %v, %v", got, err)
	}
	if _, err := parser.WeekStart(start, 0); err == nil {
		t.Errorf("WeekStart(0) expected error")
	}
}
