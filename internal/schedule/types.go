package schedule

import (
	"time"

	"productivity-calendar/internal/model"
	"productivity-calendar/internal/schedule/planner"
)

const (
	DefaultDaysAhead = 7
	MaxDaysAhead     = 365
)

// --- UseCase Inputs ---

type OverviewInput struct {
	DaysAhead int
}

type ScheduleTaskInput struct {
	TaskID string
	Commit bool
}

// --- UseCase Outputs ---

type OverviewOutput struct {
	Overview planner.Overview
}

// Session is one proposed prep block.
type Session struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
}

type ScheduleTaskOutput struct {
	Task      model.Task
	Plan      planner.Plan
	Sessions  []Session
	Committed bool
	// Events holds the stored prep_session events when Committed.
	Events  []model.Event
	Message string
}
