package datemath_test

import (
	"errors"
	"testing"
	"time"

	"productivity-calendar/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		relative string
		want     time.Time
		wantErr  bool
	}{
		{relative: "today", want: day},
		{relative: " Tomorrow ", want: day.AddDate(0, 0, 1)},
		{relative: "yesterday", want: day.AddDate(0, 0, -1)},
		{relative: "in 3 days", want: day.AddDate(0, 0, 3)},
		{relative: "in 2 weeks", want: day.AddDate(0, 0, 14)},
		{relative: "in 1 month", want: day.AddDate(0, 1, 0)},
		{relative: "in a week", want: day.AddDate(0, 0, 7)},
		{relative: "two weeks from now", want: day.AddDate(0, 0, 14)},
		{relative: "10  days", want: day.AddDate(0, 0, 10)},
		{relative: "next week", want: day.AddDate(0, 0, 7)},
		{relative: "next month", want: day.AddDate(0, 1, 0)},
		{relative: "next monday", want: day.AddDate(0, 0, 5)},
		{relative: "next wednesday", want: day.AddDate(0, 0, 7)},
		{relative: "this wednesday", want: day},
		{relative: "friday", want: day.AddDate(0, 0, 2)},
		{relative: "Fri.", want: day.AddDate(0, 0, 2)},
		{relative: "end of week", want: day.AddDate(0, 0, 4)},
		{relative: "end of the month", want: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)},
		{relative: "in a few days", want: baseTime, wantErr: true},
		{relative: "some random day", want: baseTime, wantErr: true},
		{relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.relative, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, datemath.ErrUnrecognized) {
				t.Errorf("Parse() error = %v, want ErrUnrecognized", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseUsesParserTimezone(t *testing.T) {
	parser, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	// 02:00 UTC on May 2 is still May 1 in New York.
	base := time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC)
	got, _ := parser.Parse("tomorrow", base)
	if got.Day() != 2 || got.Hour() != 0 || got.Location() != parser.Location() {
		t.Errorf("tomorrow = %v", got)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
