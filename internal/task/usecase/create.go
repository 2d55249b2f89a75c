package usecase

import (
	"context"

	"productivity-calendar/internal/model"
	"productivity-calendar/internal/task"
	"productivity-calendar/internal/task/repository"
)

// Create stores a single manually entered task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if err := normalizeCreateInput(&input); err != nil {
		return task.CreateOutput{}, err
	}

	var prep model.PrepMaterial
	if input.GeneratePrep && input.TaskType.SupportsPrep() {
		prep = uc.generatePrep(ctx, input.Title, input.TaskType, input.Description)
	}
	prepJSON, err := encodePrep(prep)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create encodePrep: %v", err)
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		OwnerID:        sc.UserID,
		Title:          input.Title,
		Description:    input.Description,
		Deadline:       input.Deadline,
		EstimatedHours: input.EstimatedHours,
		Priority:       input.Priority,
		TaskType:       input.TaskType,
		SourceType:     model.SourceTypeManual,
		PrepMaterial:   prepJSON,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create repo.CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: t, PrepMaterial: prep}, nil
}

// CreateBulk stores tasks produced by document extraction.
// Invalid entries are skipped; an input with nothing valid is an error.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	opts := make([]repository.CreateTaskOptions, 0, len(input.Tasks))
	for _, in := range input.Tasks {
		if err := normalizeCreateInput(&in); err != nil {
			uc.l.Warnf(ctx, "uc.CreateBulk skip %q: %v", in.Title, err)
			continue
		}
		opts = append(opts, repository.CreateTaskOptions{
			OwnerID:          sc.UserID,
			Title:            in.Title,
			Description:      in.Description,
			Deadline:         in.Deadline,
			EstimatedHours:   in.EstimatedHours,
			Priority:         in.Priority,
			TaskType:         in.TaskType,
			SourceType:       input.SourceType,
			SourceFile:       input.SourceFile,
			ExtractionMethod: input.ExtractionMethod,
		})
	}
	if len(opts) == 0 {
		return task.CreateBulkOutput{}, task.ErrNoTasksToCreate
	}

	tasks, err := uc.repo.CreateTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateBulk repo.CreateTasks: %v", err)
		return task.CreateBulkOutput{}, err
	}

	uc.l.Infof(ctx, "uc.CreateBulk: created %d task(s) from %s %q", len(tasks), input.SourceType, input.SourceFile)
	return task.CreateBulkOutput{Tasks: tasks}, nil
}
