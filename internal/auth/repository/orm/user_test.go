package orm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	repo "productivity-calendar/internal/auth/repository"
	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/database"
	"productivity-calendar/pkg/log"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := database.Migrate(db, &model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, log.NewNop())
}

func TestCreateAndGetUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	u, err := r.CreateUser(ctx, repo.CreateUserOptions{Email: "  Ada@Example.com ", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("CreateUser() error: %v", err)
	}
	if u.ID == "" || u.Email != "ada@example.com" {
		t.Errorf("created = %+v", u)
	}

	tests := []struct {
		name   string
		opt    repo.GetOneUserOptions
		wantID string
	}{
		{name: "by id", opt: repo.GetOneUserOptions{ID: u.ID}, wantID: u.ID},
		{name: "by email any case", opt: repo.GetOneUserOptions{Email: "ADA@example.com"}, wantID: u.ID},
		{name: "unknown email", opt: repo.GetOneUserOptions{Email: "bob@example.com"}},
		{name: "no filter", opt: repo.GetOneUserOptions{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.GetOneUser(ctx, tt.opt)
			if err != nil {
				t.Fatalf("GetOneUser() error: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("GetOneUser() id = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	if _, err := r.CreateUser(ctx, repo.CreateUserOptions{Email: "ada@example.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("first CreateUser() error: %v", err)
	}
	_, err := r.CreateUser(ctx, repo.CreateUserOptions{Email: "ADA@example.com", PasswordHash: "h"})
	if !errors.Is(err, repo.ErrFailedToInsert) {
		t.Errorf("duplicate CreateUser() error = %v, want ErrFailedToInsert", err)
	}
}
