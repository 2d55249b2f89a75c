package orm

import (
	"fmt"

	"gorm.io/gorm"

	"productivity-calendar/internal/task/repository"
	"productivity-calendar/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the task domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/orm: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/orm.%s", method)
}
