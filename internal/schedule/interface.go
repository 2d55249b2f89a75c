package schedule

import (
	"context"

	"productivity-calendar/internal/model"
)

// UseCase runs the workload analyzer and the prep-session scheduler over
// the owner's stored tasks and events.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Overview(ctx context.Context, sc model.Scope, input OverviewInput) (OverviewOutput, error)
	// ScheduleTask proposes prep sessions for a task and, when Commit is set,
	// replaces the task's previously scheduled sessions with them.
	ScheduleTask(ctx context.Context, sc model.Scope, input ScheduleTaskInput) (ScheduleTaskOutput, error)
}
