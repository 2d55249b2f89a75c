package model

import (
	"testing"
	"time"
)

func TestEventValidate(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		end     time.Time
		wantErr bool
	}{
		{"end after start", start.Add(time.Hour), false},
		{"end equals start", start, true},
		{"end before start", start.Add(-time.Minute), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Event{StartTime: start, EndTime: tt.end}.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTaskEffectiveHours(t *testing.T) {
	if got := (Task{}).EffectiveHours(); got != DefaultEstimatedHours {
		t.Errorf("expected default hours, got %v", got)
	}
	if got := (Task{EstimatedHours: 2.5}).EffectiveHours(); got != 2.5 {
		t.Errorf("expected 2.5, got %v", got)
	}
}

func TestInferEventType(t *testing.T) {
	tests := map[string]EventType{
		"Phone interview with Acme": EventTypeInterview,
		"CS101 Midterm":             EventTypeExam,
		"Essay due":                 EventTypeDeadline,
		"Team sync":                 EventTypeMeeting,
	}
	for title, want := range tests {
		if got := InferEventType(title); got != want {
			t.Errorf("InferEventType(%q) = %q, want %q", title, got, want)
		}
	}
}
