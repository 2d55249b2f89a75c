package orm

import (
	"fmt"

	"gorm.io/gorm"

	"productivity-calendar/internal/calendarsync/repository"
	"productivity-calendar/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for calendar integrations.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("calendarsync/repository/orm: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("calendarsync/repository/orm.%s", method)
}
