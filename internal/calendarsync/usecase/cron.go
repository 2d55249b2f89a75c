package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"productivity-calendar/internal/calendarsync"
	"productivity-calendar/internal/model"
	pkgLog "productivity-calendar/pkg/log"
)

const cronRunTimeout = 2 * time.Minute

// CronConfig schedules a periodic calendar sync for a single owner.
type CronConfig struct {
	Spec      string
	OwnerID   string
	DaysAhead int
	Location  *time.Location
}

// StartCron registers the sync job and starts the scheduler. Each run syncs
// every configured calendar; runs never overlap. Callers stop it with the
// returned Cron's Stop.
func StartCron(l pkgLog.Logger, uc calendarsync.UseCase, cfg CronConfig) (*cron.Cron, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	_, err := c.AddFunc(cfg.Spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cronRunTimeout)
		defer cancel()
		ctx = pkgLog.WithUserID(ctx, cfg.OwnerID)

		sc := model.Scope{UserID: cfg.OwnerID}
		input := calendarsync.SyncInput{DaysAhead: cfg.DaysAhead}
		if _, err := uc.SyncGoogle(ctx, sc, input); err != nil && !errors.Is(err, calendarsync.ErrCalendarNotConfigured) {
			l.Errorf(ctx, "calendarsync.cron google: %v", err)
		}
		if _, err := uc.SyncOutlook(ctx, sc, input); err != nil && !errors.Is(err, calendarsync.ErrOutlookNotConfigured) {
			l.Errorf(ctx, "calendarsync.cron outlook: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	l.Infof(context.Background(), "calendarsync.cron: scheduled %q for owner %s", cfg.Spec, cfg.OwnerID)
	return c, nil
}
