package orm

import (
	"context"
	"fmt"
	"testing"
	"time"

	repo "productivity-calendar/internal/calendarsync/repository"
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
	if err := database.Migrate(db, &model.CalendarIntegration{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, log.NewNop())
}

func TestTouchSyncUpserts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	first := time.Date(2024, 3, 1, 9, 0, 0, 0, time.FixedZone("EST", -5*3600))

	created, err := r.TouchSync(ctx, repo.TouchSyncOptions{OwnerID: "u1", Provider: model.ProviderGoogle, At: first})
	if err != nil {
		t.Fatalf("TouchSync: %v", err)
	}
	if created.ID == "" || !created.IsActive || created.LastSync == nil || !created.LastSync.Equal(first) {
		t.Fatalf("created = %+v", created)
	}

	later := first.Add(6 * time.Hour)
	touched, err := r.TouchSync(ctx, repo.TouchSyncOptions{OwnerID: "u1", Provider: model.ProviderGoogle, At: later})
	if err != nil {
		t.Fatalf("second TouchSync: %v", err)
	}
	if touched.ID != created.ID {
		t.Errorf("second sync created a new row: %s != %s", touched.ID, created.ID)
	}
	if !touched.LastSync.Equal(later) {
		t.Errorf("last sync = %v, want %v", touched.LastSync, later)
	}

	if _, err := r.TouchSync(ctx, repo.TouchSyncOptions{OwnerID: "u1", Provider: model.ProviderGmail, At: later}); err != nil {
		t.Fatalf("gmail TouchSync: %v", err)
	}
	if _, err := r.TouchSync(ctx, repo.TouchSyncOptions{OwnerID: "u2", Provider: model.ProviderOutlook, At: later}); err != nil {
		t.Fatalf("other owner TouchSync: %v", err)
	}

	rows, err := r.ListIntegrations(ctx, repo.ListIntegrationsOptions{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("ListIntegrations: %v", err)
	}
	if len(rows) != 2 || rows[0].Provider != model.ProviderGmail || rows[1].Provider != model.ProviderGoogle {
		t.Errorf("rows = %+v", rows)
	}
}
