package orm

import (
	"time"

	"gorm.io/gorm"

	repo "productivity-calendar/internal/task/repository"
)

var allowedOrderBy = map[string]bool{
	"deadline ASC":    true,
	"deadline DESC":   true,
	"created_at ASC":  true,
	"created_at DESC": true,
}

// utc normalizes a stored deadline. The sqlite driver keeps times as text,
// so mixed offsets would compare as strings rather than instants.
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

// buildGetOneQuery applies every non-empty field as an AND condition.
func (r *implRepository) buildGetOneQuery(db *gorm.DB, opt repo.GetOneTaskOptions) *gorm.DB {
	if opt.ID != "" {
		db = db.Where("id = ?", opt.ID)
	}
	if opt.OwnerID != "" {
		db = db.Where("owner_id = ?", opt.OwnerID)
	}
	return db
}

// buildListFilter applies the filters of ListTasks without pagination.
func (r *implRepository) buildListFilter(db *gorm.DB, opt repo.ListTasksOptions) *gorm.DB {
	db = db.Where("owner_id = ?", opt.OwnerID)
	if opt.Completed != nil {
		db = db.Where("completed = ?", *opt.Completed)
	}
	if opt.TaskType != "" {
		db = db.Where("task_type = ?", opt.TaskType)
	}
	if opt.DeadlineFrom != nil {
		db = db.Where("deadline >= ?", opt.DeadlineFrom.UTC())
	}
	if opt.DeadlineTo != nil {
		db = db.Where("deadline <= ?", opt.DeadlineTo.UTC())
	}
	return db
}

// buildListQuery adds ordering and pagination on top of buildListFilter.
func (r *implRepository) buildListQuery(db *gorm.DB, opt repo.ListTasksOptions) *gorm.DB {
	db = r.buildListFilter(db, opt)

	orderBy := opt.OrderBy
	if !allowedOrderBy[orderBy] {
		orderBy = "created_at DESC"
	}
	db = db.Order(orderBy)

	if opt.Limit > 0 {
		db = db.Limit(opt.Limit)
	}
	if opt.Offset > 0 {
		db = db.Offset(opt.Offset)
	}
	return db
}
