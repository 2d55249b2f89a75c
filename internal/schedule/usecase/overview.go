package usecase

import (
	"context"
	"errors"
	"time"

	eventRepo "productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
	"productivity-calendar/internal/schedule"
	"productivity-calendar/internal/schedule/planner"
	taskRepo "productivity-calendar/internal/task/repository"
)

// Overview analyzes the owner's workload over the next DaysAhead days.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope, input schedule.OverviewInput) (schedule.OverviewOutput, error) {
	days := input.DaysAhead
	if days <= 0 {
		return schedule.OverviewOutput{}, planner.ErrNonPositiveHorizon
	}
	if days > schedule.MaxDaysAhead {
		return schedule.OverviewOutput{}, schedule.ErrHorizonTooLarge
	}

	now := uc.now()
	windowEnd := now.Add(time.Duration(days) * 24 * time.Hour)
	notCompleted := false

	tasks, _, err := uc.taskRepo.ListTasks(ctx, taskRepo.ListTasksOptions{
		OwnerID:      sc.UserID,
		Completed:    &notCompleted,
		DeadlineFrom: &now,
		DeadlineTo:   &windowEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overview taskRepo.ListTasks: %v", err)
		return schedule.OverviewOutput{}, err
	}

	events, err := uc.eventRepo.ListEvents(ctx, eventRepo.ListEventsOptions{
		OwnerID:   sc.UserID,
		StartFrom: &now,
		StartTo:   &windowEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overview eventRepo.ListEvents: %v", err)
		return schedule.OverviewOutput{}, err
	}

	ov, err := planner.ComputeOverview(days, tasks, events, now)
	if err != nil {
		if !errors.Is(err, planner.ErrInvalidArgument) {
			uc.l.Errorf(ctx, "uc.Overview planner.ComputeOverview: %v", err)
		}
		return schedule.OverviewOutput{}, err
	}
	return schedule.OverviewOutput{Overview: ov}, nil
}
