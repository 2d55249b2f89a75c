package orm

import (
	"gorm.io/gorm"

	repo "productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
)

// toUTC normalizes stored times. The sqlite driver keeps them as text, so mixed
// offsets would compare as strings rather than instants.
func toUTC(e *model.Event) {
	e.StartTime = e.StartTime.UTC()
	e.EndTime = e.EndTime.UTC()
}

// buildListQuery applies every non-zero filter as an AND condition.
func (r *implRepository) buildListQuery(db *gorm.DB, opt repo.ListEventsOptions) *gorm.DB {
	db = db.Where("owner_id = ?", opt.OwnerID)
	if opt.StartFrom != nil {
		db = db.Where("start_time >= ?", opt.StartFrom.UTC())
	}
	if opt.StartTo != nil {
		db = db.Where("start_time <= ?", opt.StartTo.UTC())
	}
	if opt.EndAfter != nil {
		db = db.Where("end_time > ?", opt.EndAfter.UTC())
	}
	if opt.Source != "" {
		db = db.Where("source = ?", opt.Source)
	}
	if opt.TaskID != "" {
		db = db.Where("task_id = ?", opt.TaskID)
	}
	return db.Order("start_time ASC")
}
