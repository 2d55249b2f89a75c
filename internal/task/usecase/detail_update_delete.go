package usecase

import (
	"context"
	"strings"

	"productivity-calendar/internal/model"
	"productivity-calendar/internal/task"
	"productivity-calendar/internal/task/repository"
)

// Detail returns a task and its decoded prep material.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return task.DetailOutput{}, err
	}

	prep, err := model.PrepMaterialOf(t)
	if err != nil {
		// Stored material is unreadable; the task itself is still useful.
		uc.l.Warnf(ctx, "uc.Detail PrepMaterialOf %s: %v", t.ID, err)
	}
	return task.DetailOutput{Task: t, PrepMaterial: prep}, nil
}

// Update applies a partial update. Fields left nil keep their value.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	t, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	if err := applyUpdate(&t, input); err != nil {
		return task.UpdateOutput{}, err
	}

	return uc.save(ctx, "Update", t)
}

// ToggleComplete flips the completed flag.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (task.UpdateOutput, error) {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return task.UpdateOutput{}, err
	}
	t.Completed = !t.Completed
	return uc.save(ctx, "ToggleComplete", t)
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwned(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{ID: id, OwnerID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete repo.DeleteTask: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned repo.GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (uc *implUseCase) save(ctx context.Context, method string, t model.Task) (task.UpdateOutput, error) {
	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s repo.UpdateTask: %v", method, err)
		return task.UpdateOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}
	return task.UpdateOutput{Task: updated}, nil
}

func applyUpdate(t *model.Task, in task.UpdateInput) error {
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return task.ErrEmptyTitle
		}
		t.Title = title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.ClearDeadline {
		t.Deadline = nil
	} else if in.Deadline != nil {
		d := *in.Deadline
		t.Deadline = &d
	}
	if in.EstimatedHours != nil {
		if *in.EstimatedHours <= 0 {
			return task.ErrInvalidEstimate
		}
		t.EstimatedHours = *in.EstimatedHours
	}
	if in.Priority != nil {
		if !in.Priority.Valid() {
			return task.ErrInvalidPriority
		}
		t.Priority = *in.Priority
	}
	if in.TaskType != nil {
		if !in.TaskType.Valid() {
			return task.ErrInvalidTaskType
		}
		if *in.TaskType != t.TaskType && !in.TaskType.SupportsPrep() {
			t.PrepMaterial = nil
		}
		t.TaskType = *in.TaskType
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	return nil
}
