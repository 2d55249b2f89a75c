package orm

import (
	"context"
	"fmt"
	"testing"
	"time"

	repo "productivity-calendar/internal/event/repository"
	"productivity-calendar/internal/model"
	"productivity-calendar/internal/schedule/planner"
	"productivity-calendar/pkg/database"
	"productivity-calendar/pkg/log"
)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	db, err := database.Open(database.Config{
		Driver: database.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := database.Migrate(db, &model.Event{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, log.NewNop()).(*implRepository)
}

var base = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func at(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

func TestCreateGetUpdateDelete(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	e, err := r.CreateEvent(ctx, repo.CreateEventOptions{
		OwnerID: "u1", Title: "Standup", StartTime: at(0), EndTime: at(1),
		EventType: model.EventTypeMeeting, Source: model.EventSourceManual,
	})
	if err != nil || e.ID == "" {
		t.Fatalf("CreateEvent: %v %+v", err, e)
	}

	other, err := r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: e.ID, OwnerID: "u2"})
	if err != nil || other.ID != "" {
		t.Fatalf("other owner must not see the event: %+v %v", other, err)
	}

	e.Title = "Retro"
	e.EndTime = at(2)
	updated, err := r.UpdateEvent(ctx, repo.UpdateEventOptions{Event: e})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if updated.Title != "Retro" || !updated.EndTime.Equal(at(2)) {
		t.Errorf("updated = %+v", updated)
	}

	if err := r.DeleteEvent(ctx, repo.DeleteEventOptions{ID: e.ID, OwnerID: "u1"}); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	gone, _ := r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: e.ID, OwnerID: "u1"})
	if gone.ID != "" {
		t.Error("event still present after delete")
	}
}

func TestListEventsFilters(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	taskID := "task-1"

	_, err := r.CreateEvents(ctx, []repo.CreateEventOptions{
		{OwnerID: "u1", Title: "late", StartTime: at(48), EndTime: at(49), Source: model.EventSourceManual},
		{OwnerID: "u1", Title: "early", StartTime: at(0), EndTime: at(1), Source: model.EventSourceICS, ExternalID: "x1"},
		{OwnerID: "u1", Title: "prep", StartTime: at(24), EndTime: at(26), Source: model.EventSourceScheduler, TaskID: &taskID},
		{OwnerID: "u2", Title: "foreign", StartTime: at(0), EndTime: at(1), Source: model.EventSourceManual},
	})
	if err != nil {
		t.Fatalf("CreateEvents: %v", err)
	}

	from, to, endAfter := at(12), at(30), at(0)
	tests := []struct {
		name string
		opt  repo.ListEventsOptions
		want []string
	}{
		{name: "owner only, ordered", opt: repo.ListEventsOptions{OwnerID: "u1"}, want: []string{"early", "prep", "late"}},
		{name: "start window", opt: repo.ListEventsOptions{OwnerID: "u1", StartFrom: &from, StartTo: &to}, want: []string{"prep"}},
		{name: "end after", opt: repo.ListEventsOptions{OwnerID: "u1", EndAfter: &endAfter}, want: []string{"early", "prep", "late"}},
		{name: "source", opt: repo.ListEventsOptions{OwnerID: "u1", Source: model.EventSourceICS}, want: []string{"early"}},
		{name: "task", opt: repo.ListEventsOptions{OwnerID: "u1", TaskID: taskID}, want: []string{"prep"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ListEvents(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListEvents: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.Title != tt.want[i] {
					t.Errorf("[%d] = %q, want %q", i, e.Title, tt.want[i])
				}
			}
		})
	}

	ids, err := r.ListExternalIDs(ctx, repo.ListExternalIDsOptions{OwnerID: "u1", Source: model.EventSourceICS})
	if err != nil {
		t.Fatalf("ListExternalIDs: %v", err)
	}
	if len(ids) != 1 || ids["x1"] == "" {
		t.Errorf("external ids = %v", ids)
	}
}

func TestReplaceTaskSessions(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	taskID := "task-1"

	session := func(h int) repo.CreateEventOptions {
		return repo.CreateEventOptions{
			OwnerID: "u1", Title: "Prep", StartTime: at(h), EndTime: at(h + 1),
			EventType: model.EventTypePrepSession, TaskID: &taskID, Source: model.EventSourceScheduler,
		}
	}

	if _, err := r.ReplaceTaskSessions(ctx, repo.ReplaceTaskSessionsOptions{
		OwnerID: "u1", TaskID: taskID, Sessions: []repo.CreateEventOptions{session(0), session(24)},
	}); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	// A manual event linked to the task survives a replace.
	manual := session(50)
	manual.Source = model.EventSourceManual
	if _, err := r.CreateEvent(ctx, manual); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	created, err := r.ReplaceTaskSessions(ctx, repo.ReplaceTaskSessionsOptions{
		OwnerID: "u1", TaskID: taskID, Sessions: []repo.CreateEventOptions{session(72)},
	})
	if err != nil || len(created) != 1 {
		t.Fatalf("second replace: %v %d", err, len(created))
	}

	all, _ := r.ListEvents(ctx, repo.ListEventsOptions{OwnerID: "u1", TaskID: taskID})
	if len(all) != 2 {
		t.Fatalf("events = %d, want 2", len(all))
	}
	if !all[0].StartTime.Equal(at(50)) || !all[1].StartTime.Equal(at(72)) {
		t.Errorf("unexpected events %v %v", all[0].StartTime, all[1].StartTime)
	}
}

func TestListEventsMixedOffsets(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	newYork := time.FixedZone("EST", -5*3600)
	sydney := time.FixedZone("AEDT", 11*3600)

	// 10:00-05:00 is 15:00Z.
	nyStart := time.Date(2024, 1, 1, 10, 0, 0, 0, newYork)
	if _, err := r.CreateEvent(ctx, repo.CreateEventOptions{
		OwnerID: "u1", Title: "call", StartTime: nyStart, EndTime: nyStart.Add(time.Hour), Source: model.EventSourceManual,
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	from := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	endAfter := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		opt  repo.ListEventsOptions
		want int
	}{
		{name: "start from", opt: repo.ListEventsOptions{OwnerID: "u1", StartFrom: &from}, want: 1},
		{name: "end after", opt: repo.ListEventsOptions{OwnerID: "u1", EndAfter: &endAfter}, want: 1},
		{name: "bound in another zone", opt: repo.ListEventsOptions{OwnerID: "u1", StartFrom: ptr(from.In(sydney))}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.ListEvents(ctx, tt.opt)
			if err != nil {
				t.Fatalf("ListEvents: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestUpdateEventStoresUTC(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	newYork := time.FixedZone("EST", -5*3600)

	e, err := r.CreateEvent(ctx, repo.CreateEventOptions{OwnerID: "u1", Title: "a", StartTime: at(0), EndTime: at(1)})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	// 10:00-05:00 is 15:00Z, after the 12:00Z bound.
	e.StartTime = time.Date(2024, 3, 4, 10, 0, 0, 0, newYork)
	e.EndTime = e.StartTime.Add(time.Hour)
	if _, err := r.UpdateEvent(ctx, repo.UpdateEventOptions{Event: e}); err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}

	from := at(3)
	got, err := r.ListEvents(ctx, repo.ListEventsOptions{OwnerID: "u1", StartFrom: &from})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(got) != 1 || !got[0].StartTime.Equal(e.StartTime) {
		t.Errorf("got %+v", got)
	}
}

func TestStoredOffsetEventBlocksSessions(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	sydney := time.FixedZone("AEDT", 11*3600)

	// 08:00Z-19:00Z on Jan 2, entered in +11:00.
	start := time.Date(2024, 1, 2, 19, 0, 0, 0, sydney)
	if _, err := r.CreateEvent(ctx, repo.CreateEventOptions{
		OwnerID: "u1", Title: "exam day", StartTime: start, EndTime: start.Add(11 * time.Hour), Source: model.EventSourceManual,
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	busy, err := r.ListEvents(ctx, repo.ListEventsOptions{OwnerID: "u1", EndAfter: &now, StartTo: &deadline})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(busy) != 1 {
		t.Fatalf("busy events = %d, want 1", len(busy))
	}

	task := model.Task{Deadline: &deadline, EstimatedHours: 4}
	plan, err := planner.ScheduleSessions(task, busy, now, planner.DefaultOptions())
	if err != nil {
		t.Fatalf("ScheduleSessions: %v", err)
	}
	for _, s := range plan.Sessions {
		if s.Overlaps(busy[0].Interval()) {
			t.Errorf("session %v-%v overlaps the stored event", s.Start, s.End)
		}
	}
}

func ptr[T any](v T) *T { return &v }
