package database_test

import (
	"testing"

	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/database"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	db, err := database.Open(database.Config{Driver: database.DriverSQLite, DSN: "file:migrate_test?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := database.Migrate(db, &model.User{}, &model.Task{}, &model.Event{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !db.Migrator().HasTable(&model.Task{}) {
		t.Errorf("expected tasks table")
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := database.Open(database.Config{Driver: "oracle"}); err == nil {
		t.Errorf("expected error for unsupported driver")
	}
}
