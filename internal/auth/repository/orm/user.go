package orm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	repo "productivity-calendar/internal/auth/repository"
	"productivity-calendar/internal/model"
)

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	u := model.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(opt.Email)),
		PasswordHash: opt.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	q := r.db.WithContext(ctx)
	switch {
	case opt.ID != "":
		q = q.Where("id = ?", opt.ID)
	case opt.Email != "":
		q = q.Where("email = ?", strings.ToLower(strings.TrimSpace(opt.Email)))
	default:
		return model.User{}, nil
	}

	var u model.User
	err := q.First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
