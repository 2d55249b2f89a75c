package planner

import (
	"math"
	"time"

	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/interval"
)

const hoursPerDay = 24

// Overview summarizes committed time against prep work due in a horizon.
type Overview struct {
	HorizonDays         int
	WindowStart         time.Time
	WindowEnd           time.Time
	TotalAvailableHours float64
	BusyHours           float64
	PrepHoursNeeded     float64
	FreeHours           float64
	// Utilization is (busy + prep) / available * 100 and may exceed 100.
	Utilization float64
	// DisplayUtilization is Utilization clamped to [0, 100].
	DisplayUtilization float64
	IsFeasible         bool
	TaskCount          int
	EventCount         int
}

// ComputeOverview analyzes the window [now, now+horizonDays days].
//
// A task counts when it has a deadline inside the window and is not
// completed; its effective estimate is added to the prep hours. An event
// counts when its start lies inside the window, with its full duration.
// Every day contributes 24 available hours.
func ComputeOverview(horizonDays int, tasks []model.Task, events []model.Event, now time.Time) (Overview, error) {
	if horizonDays <= 0 {
		return Overview{}, ErrNonPositiveHorizon
	}

	window := interval.New(now, now.Add(time.Duration(horizonDays)*hoursPerDay*time.Hour))
	ov := Overview{
		HorizonDays:         horizonDays,
		WindowStart:         window.Start,
		WindowEnd:           window.End,
		TotalAvailableHours: float64(horizonDays * hoursPerDay),
	}

	for _, t := range tasks {
		if t.Completed || t.Deadline == nil || !inClosed(window, *t.Deadline) {
			continue
		}
		ov.PrepHoursNeeded += t.EffectiveHours()
		ov.TaskCount++
	}

	for _, e := range events {
		if !inClosed(window, e.StartTime) {
			continue
		}
		ov.BusyHours += e.DurationHours()
		ov.EventCount++
	}

	ov.FreeHours = math.Max(0, ov.TotalAvailableHours-ov.BusyHours)
	ov.Utilization = (ov.BusyHours + ov.PrepHoursNeeded) / ov.TotalAvailableHours * 100
	ov.DisplayUtilization = math.Min(100, math.Max(0, ov.Utilization))
	ov.IsFeasible = ov.PrepHoursNeeded <= ov.FreeHours

	return ov, nil
}

// inClosed reports whether t lies in [w.Start, w.End].
func inClosed(w interval.Interval, t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
