package orm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	repo "productivity-calendar/internal/calendarsync/repository"
	"productivity-calendar/internal/model"
)

func (r *implRepository) TouchSync(ctx context.Context, opt repo.TouchSyncOptions) (model.CalendarIntegration, error) {
	at := opt.At.UTC()
	row := model.CalendarIntegration{
		ID:       uuid.New().String(),
		OwnerID:  opt.OwnerID,
		Provider: opt.Provider,
		IsActive: true,
		LastSync: &at,
	}

	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "provider"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_active", "last_sync", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchSync"), err)
		return model.CalendarIntegration{}, repo.ErrFailedToUpsert
	}

	var stored model.CalendarIntegration
	if err := db.Where("owner_id = ? AND provider = ?", opt.OwnerID, opt.Provider).First(&stored).Error; err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("TouchSync"), err)
		return model.CalendarIntegration{}, repo.ErrFailedToUpsert
	}
	return stored, nil
}

func (r *implRepository) ListIntegrations(ctx context.Context, opt repo.ListIntegrationsOptions) ([]model.CalendarIntegration, error) {
	var rows []model.CalendarIntegration
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", opt.OwnerID).
		Order("provider ASC").
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIntegrations"), err)
		return nil, repo.ErrFailedToList
	}
	return rows, nil
}
