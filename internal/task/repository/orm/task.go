package orm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"productivity-calendar/internal/model"
	repo "productivity-calendar/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	t := r.buildTask(opt)
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// CreateTasks inserts all tasks in a single transaction.
func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	tasks := make([]model.Task, len(opts))
	for i, opt := range opts {
		tasks[i] = r.buildTask(opt)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tasks).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return tasks, nil
}

// GetOneTask retrieves a single Task. Not found yields a zero Task and no error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	var t model.Task
	err := r.buildGetOneQuery(r.db.WithContext(ctx), opt).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of Tasks and the total count before pagination.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	var total int64
	if err := r.buildListFilter(r.db.WithContext(ctx).Model(&model.Task{}), opt).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	var tasks []model.Task
	if err := r.buildListQuery(r.db.WithContext(ctx), opt).Find(&tasks).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, int(total), nil
}

// UpdateTask saves every column of opt.Task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	t := opt.Task
	t.Deadline = utc(t.Deadline)
	res := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ? AND owner_id = ?", t.ID, t.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(&t)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), res.Error)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: t.ID, OwnerID: t.OwnerID})
}

// DeleteTask removes a Task by ID within its owner.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", opt.ID, opt.OwnerID).
		Delete(&model.Task{}).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) buildTask(opt repo.CreateTaskOptions) model.Task {
	return model.Task{
		ID:               uuid.NewString(),
		OwnerID:          opt.OwnerID,
		Title:            opt.Title,
		Description:      opt.Description,
		Deadline:         utc(opt.Deadline),
		EstimatedHours:   opt.EstimatedHours,
		Priority:         opt.Priority,
		TaskType:         opt.TaskType,
		SourceType:       opt.SourceType,
		SourceFile:       opt.SourceFile,
		ExtractionMethod: opt.ExtractionMethod,
		PrepMaterial:     opt.PrepMaterial,
	}
}
