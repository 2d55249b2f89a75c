package usecase

import (
	"context"
	"errors"
	"fmt"

	eventRepo "productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
	"productivity-calendar/internal/schedule"
	"productivity-calendar/internal/schedule/planner"
	"productivity-calendar/internal/task"
	taskRepo "productivity-calendar/internal/task/repository"
)

// ScheduleTask plans prep sessions between now and the task deadline.
// The task's own earlier scheduler sessions are ignored as busy time since
// a commit replaces them.
func (uc *implUseCase) ScheduleTask(ctx context.Context, sc model.Scope, input schedule.ScheduleTaskInput) (schedule.ScheduleTaskOutput, error) {
	t, err := uc.taskRepo.GetOneTask(ctx, taskRepo.GetOneTaskOptions{ID: input.TaskID, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleTask taskRepo.GetOneTask: %v", err)
		return schedule.ScheduleTaskOutput{}, err
	}
	if t.ID == "" {
		return schedule.ScheduleTaskOutput{}, task.ErrTaskNotFound
	}
	if t.Completed {
		return schedule.ScheduleTaskOutput{}, schedule.ErrTaskCompleted
	}

	now := uc.now()
	opt := eventRepo.ListEventsOptions{OwnerID: sc.UserID, EndAfter: &now}
	if t.Deadline != nil {
		opt.StartTo = t.Deadline
	}
	events, err := uc.eventRepo.ListEvents(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleTask eventRepo.ListEvents: %v", err)
		return schedule.ScheduleTaskOutput{}, err
	}
	busy := excludeOwnSessions(events, t.ID)

	planned := t
	planned.EstimatedHours = t.EffectiveHours()
	plan, err := planner.ScheduleSessions(planned, busy, now, uc.opt)
	if err != nil {
		if !errors.Is(err, planner.ErrInvalidArgument) && !errors.Is(err, planner.ErrInvalidState) {
			uc.l.Errorf(ctx, "uc.ScheduleTask planner.ScheduleSessions: %v", err)
		}
		return schedule.ScheduleTaskOutput{}, err
	}

	out := schedule.ScheduleTaskOutput{
		Task:     t,
		Plan:     plan,
		Sessions: buildSessions(t, plan),
		Message:  buildMessage(plan),
	}
	if !input.Commit || len(out.Sessions) == 0 {
		return out, nil
	}

	stored, err := uc.eventRepo.ReplaceTaskSessions(ctx, eventRepo.ReplaceTaskSessionsOptions{
		OwnerID:  sc.UserID,
		TaskID:   t.ID,
		Sessions: sessionOptions(sc.UserID, t.ID, out.Sessions),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ScheduleTask eventRepo.ReplaceTaskSessions: %v", err)
		return schedule.ScheduleTaskOutput{}, err
	}
	out.Committed = true
	out.Events = stored

	uc.l.Infof(ctx, "uc.ScheduleTask: task %s committed %d sessions", t.ID, len(stored))
	return out, nil
}

func excludeOwnSessions(events []model.Event, taskID string) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if e.Source == model.EventSourceScheduler && e.TaskID != nil && *e.TaskID == taskID {
			continue
		}
		out = append(out, e)
	}
	return out
}

func buildSessions(t model.Task, plan planner.Plan) []schedule.Session {
	sessions := make([]schedule.Session, len(plan.Sessions))
	for i, iv := range plan.Sessions {
		sessions[i] = schedule.Session{
			Title:       fmt.Sprintf("Prep: %s (Session %d)", t.Title, i+1),
			Description: fmt.Sprintf("Preparation session for %s", t.Title),
			Start:       iv.Start,
			End:         iv.End,
		}
	}
	return sessions
}

func buildMessage(plan planner.Plan) string {
	msg := fmt.Sprintf("Found %d available time slots for prep sessions", plan.Placed())
	if plan.Shortfall > 0 {
		msg += fmt.Sprintf("; %d of %d sessions did not fit before the deadline", plan.Shortfall, plan.Requested)
	}
	return msg
}

func sessionOptions(ownerID, taskID string, sessions []schedule.Session) []eventRepo.CreateEventOptions {
	opts := make([]eventRepo.CreateEventOptions, len(sessions))
	for i, s := range sessions {
		id := taskID
		opts[i] = eventRepo.CreateEventOptions{
			OwnerID:     ownerID,
			Title:       s.Title,
			Description: s.Description,
			StartTime:   s.Start,
			EndTime:     s.End,
			EventType:   model.EventTypePrepSession,
			TaskID:      &id,
			Source:      model.EventSourceScheduler,
		}
	}
	return opts
}
