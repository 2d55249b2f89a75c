package planner

import (
	"errors"
	"math"
	"testing"
	"time"

	"productivity-calendar/internal/model"
)

var baseNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestComputeOverview_Scenario(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Deadline: ptrTime(baseNow.AddDate(0, 0, 3)), EstimatedHours: 10},
	}
	events := []model.Event{
		{ID: "e1", StartTime: baseNow.Add(10 * time.Hour), EndTime: baseNow.Add(12 * time.Hour)},
	}

	ov, err := ComputeOverview(7, tasks, events, baseNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ov.BusyHours != 2 {
		t.Errorf("BusyHours = %v, want 2", ov.BusyHours)
	}
	if ov.TotalAvailableHours != 168 {
		t.Errorf("TotalAvailableHours = %v, want 168", ov.TotalAvailableHours)
	}
	if ov.PrepHoursNeeded != 10 {
		t.Errorf("PrepHoursNeeded = %v, want 10", ov.PrepHoursNeeded)
	}
	if ov.FreeHours != 166 {
		t.Errorf("FreeHours = %v, want 166", ov.FreeHours)
	}
	if !ov.IsFeasible {
		t.Errorf("expected feasible")
	}
	if !approx(ov.Utilization, 12.0/168.0*100) {
		t.Errorf("Utilization = %v", ov.Utilization)
	}
}

func TestComputeOverview_Filters(t *testing.T) {
	tasks := []model.Task{
		{ID: "done", Deadline: ptrTime(baseNow.AddDate(0, 0, 1)), EstimatedHours: 4, Completed: true},
		{ID: "no-deadline", EstimatedHours: 4},
		{ID: "past", Deadline: ptrTime(baseNow.Add(-time.Hour)), EstimatedHours: 4},
		{ID: "too-far", Deadline: ptrTime(baseNow.AddDate(0, 0, 8)), EstimatedHours: 4},
		{ID: "edge", Deadline: ptrTime(baseNow.AddDate(0, 0, 7)), EstimatedHours: 4},
		{ID: "unestimated", Deadline: ptrTime(baseNow.AddDate(0, 0, 2))},
	}
	events := []model.Event{
		{ID: "before", StartTime: baseNow.Add(-2 * time.Hour), EndTime: baseNow.Add(time.Hour)},
		{ID: "spills-over", StartTime: baseNow.AddDate(0, 0, 7).Add(-time.Hour), EndTime: baseNow.AddDate(0, 0, 7).Add(2 * time.Hour)},
		{ID: "after", StartTime: baseNow.AddDate(0, 0, 8), EndTime: baseNow.AddDate(0, 0, 8).Add(time.Hour)},
	}

	ov, err := ComputeOverview(7, tasks, events, baseNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ov.TaskCount != 2 {
		t.Errorf("TaskCount = %d, want 2", ov.TaskCount)
	}
	if ov.PrepHoursNeeded != 4+model.DefaultEstimatedHours {
		t.Errorf("PrepHoursNeeded = %v", ov.PrepHoursNeeded)
	}
	if ov.EventCount != 1 || ov.BusyHours != 3 {
		t.Errorf("expected only the spilling event with its full 3h, got count=%d busy=%v", ov.EventCount, ov.BusyHours)
	}
}

func TestComputeOverview_Overcommitted(t *testing.T) {
	var events []model.Event
	for d := 0; d < 2; d++ {
		start := baseNow.AddDate(0, 0, d)
		events = append(events, model.Event{StartTime: start, EndTime: start.Add(20 * time.Hour)})
	}
	tasks := []model.Task{{Deadline: ptrTime(baseNow.Add(36 * time.Hour)), EstimatedHours: 30}}

	ov, err := ComputeOverview(2, tasks, events, baseNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ov.FreeHours != 8 {
		t.Errorf("FreeHours = %v, want 8", ov.FreeHours)
	}
	if ov.IsFeasible {
		t.Errorf("expected infeasible")
	}
	if ov.Utilization <= 100 {
		t.Errorf("Utilization must be reported unclamped, got %v", ov.Utilization)
	}
	if ov.DisplayUtilization != 100 {
		t.Errorf("DisplayUtilization = %v, want 100", ov.DisplayUtilization)
	}
}

func TestComputeOverview_FreeHoursNeverNegative(t *testing.T) {
	events := []model.Event{{StartTime: baseNow, EndTime: baseNow.Add(30 * time.Hour)}}

	ov, err := ComputeOverview(1, nil, events, baseNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ov.FreeHours != 0 {
		t.Errorf("FreeHours = %v, want 0", ov.FreeHours)
	}
	if ov.FreeHours+ov.BusyHours < ov.TotalAvailableHours {
		t.Errorf("free + busy must cover the available hours")
	}
}

func TestComputeOverview_InvalidHorizon(t *testing.T) {
	for _, h := range []int{0, -3} {
		_, err := ComputeOverview(h, nil, nil, baseNow)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("horizon %d: expected ErrInvalidArgument, got %v", h, err)
		}
	}
}

func TestComputeOverview_Pure(t *testing.T) {
	deadline := baseNow.AddDate(0, 0, 1)
	tasks := []model.Task{{ID: "t", Deadline: &deadline, EstimatedHours: 2}}
	events := []model.Event{{ID: "e", StartTime: baseNow.Add(time.Hour), EndTime: baseNow.Add(2 * time.Hour)}}

	first, _ := ComputeOverview(3, tasks, events, baseNow)
	second, _ := ComputeOverview(3, tasks, events, baseNow)
	if first != second {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
	if tasks[0].EstimatedHours != 2 || !events[0].EndTime.Equal(baseNow.Add(2*time.Hour)) {
		t.Errorf("inputs were modified")
	}
}
