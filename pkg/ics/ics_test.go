package ics

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const sampleCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:single-1\r\n" +
	"DTSTAMP:20240301T000000Z\r\n" +
	"DTSTART:20240305T140000Z\r\n" +
	"DTEND:20240305T153000Z\r\n" +
	"SUMMARY:Dentist\r\n" +
	"LOCATION:Main St\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:weekly-1\r\n" +
	"DTSTAMP:20240301T000000Z\r\n" +
	"DTSTART:20240304T090000Z\r\n" +
	"DTEND:20240304T100000Z\r\n" +
	"RRULE:FREQ=WEEKLY;COUNT=4\r\n" +
	"EXDATE:20240311T090000Z\r\n" +
	"SUMMARY:Standup\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:weekly-1\r\n" +
	"DTSTAMP:20240301T000000Z\r\n" +
	"RECURRENCE-ID:20240318T090000Z\r\n" +
	"DTSTART:20240318T110000Z\r\n" +
	"DTEND:20240318T120000Z\r\n" +
	"SUMMARY:Standup (moved)\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:cancelled-1\r\n" +
	"DTSTAMP:20240301T000000Z\r\n" +
	"DTSTART:20240306T090000Z\r\n" +
	"DTEND:20240306T100000Z\r\n" +
	"STATUS:CANCELLED\r\n" +
	"SUMMARY:Gone\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"DTSTAMP:20240301T000000Z\r\n" +
	"DTSTART:20240306T090000Z\r\n" +
	"SUMMARY:No uid\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:allday-1\r\n" +
	"DTSTAMP:20240301T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20240308\r\n" +
	"SUMMARY:Holiday\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParse(t *testing.T) {
	res, err := Parse([]byte(sampleCalendar))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
	if len(res.Events) != 4 {
		t.Fatalf("len(Events) = %d, want 4", len(res.Events))
	}

	byUID := map[string]ParsedEvent{}
	for _, ev := range res.Events {
		if !ev.IsOverride() {
			byUID[ev.UID] = ev
		}
	}

	single := byUID["single-1"]
	if single.Summary != "Dentist" || single.Location != "Main St" {
		t.Errorf("single = %+v", single)
	}
	if got := single.End.Sub(single.Start); got != 90*time.Minute {
		t.Errorf("single duration = %v", got)
	}

	weekly := byUID["weekly-1"]
	if weekly.RawRRule != "FREQ=WEEKLY;COUNT=4" || len(weekly.ExDates) != 1 {
		t.Errorf("weekly = %+v", weekly)
	}

	allDay := byUID["allday-1"]
	if !allDay.AllDay || allDay.End.Sub(allDay.Start) != 24*time.Hour {
		t.Errorf("all-day = %+v", allDay)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse([]byte("  \n")); !errors.Is(err, ErrEmptyBody) {
		t.Errorf("err = %v, want ErrEmptyBody", err)
	}
}

func TestExpand(t *testing.T) {
	res, err := Parse([]byte(sampleCalendar))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := Expand(res.Events, ExpandConfig{
		RangeStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		RangeEnd:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	var standups []Occurrence
	for _, o := range out.Occurrences {
		if o.UID == "weekly-1" {
			standups = append(standups, o)
		}
	}
	// COUNT=4 minus one EXDATE.
	if len(standups) != 3 {
		t.Fatalf("standups = %d, want 3", len(standups))
	}
	if standups[0].ExternalID() != "weekly-1/20240304T090000Z" {
		t.Errorf("external id = %q", standups[0].ExternalID())
	}
	moved := standups[1]
	if moved.Summary != "Standup (moved)" || moved.Start.Hour() != 11 {
		t.Errorf("override not applied: %+v", moved)
	}
	if moved.InstanceKey != "20240318T090000Z" {
		t.Errorf("override keeps the original instance key, got %q", moved.InstanceKey)
	}

	for i := 1; i < len(out.Occurrences); i++ {
		if out.Occurrences[i].Start.Before(out.Occurrences[i-1].Start) {
			t.Fatal("occurrences not sorted")
		}
	}
}

func TestExpandRange(t *testing.T) {
	events := []ParsedEvent{{
		UID:      "daily",
		Start:    time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		RawRRule: "FREQ=DAILY",
	}, {
		UID:      "broken",
		Start:    time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		RawRRule: "FREQ=SOMETIMES",
	}}

	tests := []struct {
		name      string
		cfg       ExpandConfig
		wantCount int
		wantTrunc bool
		wantErr   error
	}{
		{
			name: "one week",
			cfg: ExpandConfig{
				RangeStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				RangeEnd:   time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC),
			},
			wantCount: 7,
		},
		{
			name: "capped",
			cfg: ExpandConfig{
				RangeStart:             time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				RangeEnd:               time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				MaxOccurrencesPerEvent: 5,
			},
			wantCount: 5,
			wantTrunc: true,
		},
		{
			name: "inverted range",
			cfg: ExpandConfig{
				RangeStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				RangeEnd:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr: ErrInvalidRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Expand(events, tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(out.Occurrences) != tt.wantCount {
				t.Errorf("count = %d, want %d", len(out.Occurrences), tt.wantCount)
			}
			if (len(out.Truncated) > 0) != tt.wantTrunc {
				t.Errorf("truncated = %v", out.Truncated)
			}
			if len(out.InvalidRules) != 1 || out.InvalidRules[0] != "broken" {
				t.Errorf("invalid rules = %v", out.InvalidRules)
			}
		})
	}
}

func TestExport(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	body := Export("", []ExportEvent{{
		UID:      "e1",
		Summary:  "Prep: Finals (Session 1)",
		Category: "prep_session",
		Start:    time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 3, 2, 11, 0, 0, 0, time.UTC),
	}}, now)

	for _, want := range []string{"BEGIN:VCALENDAR", "PRODID:" + DefaultProductID, "UID:e1", "DTSTART:20240302T090000Z", "CATEGORIES:prep_session"} {
		if !strings.Contains(body, want) {
			t.Errorf("export missing %q:\n%s", want, body)
		}
	}

	// Round trip through Parse.
	res, err := Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse(export): %v", err)
	}
	if len(res.Events) != 1 || res.Events[0].Summary != "Prep: Finals (Session 1)" {
		t.Errorf("round trip = %+v", res.Events)
	}
}
