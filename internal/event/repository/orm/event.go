package orm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	repo "productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
)

func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	e := r.buildEvent(opt)
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// CreateEvents inserts all events in a single transaction.
func (r *implRepository) CreateEvents(ctx context.Context, opts []repo.CreateEventOptions) ([]model.Event, error) {
	if len(opts) == 0 {
		return nil, nil
	}
	events := r.buildEvents(opts)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&events).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvents"), err)
		return nil, repo.ErrFailedToInsert
	}
	return events, nil
}

// GetOneEvent retrieves a single Event. Not found yields a zero Event and no error.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	var e model.Event
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", opt.ID, opt.OwnerID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	return e, nil
}

func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	var events []model.Event
	if err := r.buildListQuery(r.db.WithContext(ctx), opt).Find(&events).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

func (r *implRepository) ListExternalIDs(ctx context.Context, opt repo.ListExternalIDsOptions) (map[string]string, error) {
	var rows []struct {
		ID         string
		ExternalID string
	}
	err := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Select("id", "external_id").
		Where("owner_id = ? AND source = ? AND external_id <> ''", opt.OwnerID, opt.Source).
		Scan(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExternalIDs"), err)
		return nil, repo.ErrFailedToList
	}

	ids := make(map[string]string, len(rows))
	for _, row := range rows {
		ids[row.ExternalID] = row.ID
	}
	return ids, nil
}

// UpdateEvent saves every column of opt.Event.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (model.Event, error) {
	e := opt.Event
	toUTC(&e)
	res := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ? AND owner_id = ?", e.ID, e.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(&e)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), res.Error)
		return model.Event{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Event{}, nil
	}
	return r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: e.ID, OwnerID: e.OwnerID})
}

func (r *implRepository) DeleteEvent(ctx context.Context, opt repo.DeleteEventOptions) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", opt.ID, opt.OwnerID).
		Delete(&model.Event{}).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) ReplaceTaskSessions(ctx context.Context, opt repo.ReplaceTaskSessionsOptions) ([]model.Event, error) {
	events := r.buildEvents(opt.Sessions)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("owner_id = ? AND task_id = ? AND source = ?", opt.OwnerID, opt.TaskID, model.EventSourceScheduler).
			Delete(&model.Event{}).Error
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}
		return tx.Create(&events).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceTaskSessions"), err)
		return nil, repo.ErrFailedToInsert
	}
	return events, nil
}

func (r *implRepository) buildEvents(opts []repo.CreateEventOptions) []model.Event {
	events := make([]model.Event, len(opts))
	for i, opt := range opts {
		events[i] = r.buildEvent(opt)
	}
	return events
}

func (r *implRepository) buildEvent(opt repo.CreateEventOptions) model.Event {
	return model.Event{
		ID:          uuid.NewString(),
		OwnerID:     opt.OwnerID,
		Title:       opt.Title,
		Description: opt.Description,
		StartTime:   opt.StartTime.UTC(),
		EndTime:     opt.EndTime.UTC(),
		EventType:   opt.EventType,
		Location:    opt.Location,
		TaskID:      opt.TaskID,
		ExternalID:  opt.ExternalID,
		Source:      opt.Source,
	}
}
