package usecase

import (
	"context"

	"productivity-calendar/internal/model"
	"productivity-calendar/internal/task"
	"productivity-calendar/internal/task/repository"
)

// List returns the owner's tasks, nearest deadline first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.TaskType != "" && !input.TaskType.Valid() {
		return task.ListOutput{}, task.ErrInvalidTaskType
	}
	limit, offset := clampPage(input.Limit, input.Offset)

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID:   sc.UserID,
		Completed: input.Completed,
		TaskType:  input.TaskType,
		Limit:     limit,
		Offset:    offset,
		OrderBy:   "deadline ASC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List repo.ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Total: total, Limit: limit, Offset: offset}, nil
}
