package orm

import (
	"fmt"

	"gorm.io/gorm"

	"productivity-calendar/internal/auth/repository"
	"productivity-calendar/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for user accounts.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/orm: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/orm.%s", method)
}
