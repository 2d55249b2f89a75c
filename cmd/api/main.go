package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"productivity-calendar/config"
	_ "productivity-calendar/docs" // Swagger docs
	"productivity-calendar/internal/calendarsync"
	syncUC "productivity-calendar/internal/calendarsync/usecase"
	"productivity-calendar/internal/document/extractor"
	"productivity-calendar/internal/httpserver"
	"productivity-calendar/internal/model"
	"productivity-calendar/internal/schedule/planner"
	"productivity-calendar/pkg/cache"
	"productivity-calendar/pkg/database"
	"productivity-calendar/pkg/datemath"
	"productivity-calendar/pkg/gcalendar"
	"productivity-calendar/pkg/gmail"
	"productivity-calendar/pkg/jwt"
	"productivity-calendar/pkg/llmprovider"
	"productivity-calendar/pkg/log"
	"productivity-calendar/pkg/outlook"
)

const jwtIssuer = "productivity-calendar"

// @title       Productivity Calendar API
// @description Workload analysis, prep-session scheduling and deadline extraction from syllabi.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Server exited: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Productivity Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Open(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogSQL:          cfg.Database.LogSQL,
	})
	if err != nil {
		return err
	}
	if err := database.Migrate(db, &model.User{}, &model.Task{}, &model.Event{}, &model.CalendarIntegration{}); err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	logger.Infof(ctx, "Database ready (%s)", cfg.Database.Driver)

	// 4. Extraction cache
	extractionCache, closeCache, err := cache.New(ctx, cache.Config{
		Driver:        cfg.Cache.Driver,
		Size:          cfg.Cache.Size,
		TTL:           cfg.Extraction.CacheTTL,
		Prefix:        "extract:",
		RedisAddr:     cfg.Cache.RedisAddr,
		RedisPassword: cfg.Cache.RedisPassword,
		RedisDB:       cfg.Cache.RedisDB,
	})
	if err != nil {
		return err
	}
	defer closeCache()

	// 5. LLM providers, optional
	llm := initLLM(ctx, cfg, logger)

	// 6. Dates and scheduling window
	dateParser, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		dateParser, _ = datemath.NewParser("UTC")
	}
	plannerOpts := planner.DefaultOptions()
	plannerOpts.DayStartHour = cfg.Scheduler.DayStartHour
	plannerOpts.DayEndHour = cfg.Scheduler.DayEndHour
	plannerOpts.Location = dateParser.Location()

	// 7. Auth
	tokens, err := jwt.New(cfg.JWT.Secret, cfg.JWT.TTL, jwtIssuer)
	if err != nil {
		return err
	}

	// 8. External calendars and mailbox, optional
	remote := initGoogleCalendar(ctx, cfg, logger)
	mail := initGmail(ctx, cfg, logger)
	outlookCal := initOutlook(ctx, cfg, logger)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Cache:       extractionCache,
		JWTManager:  tokens,
		LLM:         llm,
		DateParser:  dateParser,
		Extraction: extractor.Config{
			MaxChars:              cfg.Extraction.MaxChars,
			Timeout:               cfg.Extraction.Timeout,
			DefaultEstimatedHours: cfg.Extraction.DefaultEstimatedHours,
		},
		PreviewChars: cfg.Extraction.PreviewChars,
		Planner:      plannerOpts,
		UploadPerMin: cfg.RateLimit.UploadPerMin,
		Calendar:     remote,
		CalendarID:   cfg.GoogleCalendar.CalendarID,
		Outlook:      outlookCal,
		Mail:         mail,
		SyncCron: syncUC.CronConfig{
			Spec:      cfg.GoogleCalendar.SyncCron,
			OwnerID:   cfg.GoogleCalendar.SyncOwnerID,
			DaysAhead: cfg.GoogleCalendar.SyncDays,
			Location:  dateParser.Location(),
		},
	})
	if err != nil {
		return err
	}

	// 10. Run
	return httpServer.Run(ctx)
}

// initGoogleCalendar returns nil when no credentials are configured or they
// cannot be loaded.
func initGoogleCalendar(ctx context.Context, cfg *config.Config, logger log.Logger) calendarsync.RemoteCalendar {
	if cfg.GoogleCalendar.CredentialsPath == "" {
		return nil
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate an OAuth token")
		return nil
	}
	logger.Info(ctx, "Google Calendar initialized")
	return client
}

// initGmail shares the Google Calendar credentials.
func initGmail(ctx context.Context, cfg *config.Config, logger log.Logger) calendarsync.Mailbox {
	if !cfg.Gmail.Enabled {
		return nil
	}
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Warn(ctx, "Gmail enabled but google_calendar.credentials_path is empty")
		return nil
	}
	client, err := gmail.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		logger.Warnf(ctx, "Gmail not available (optional): %v", err)
		return nil
	}
	logger.Info(ctx, "Gmail initialized")
	return client
}

func initOutlook(ctx context.Context, cfg *config.Config, logger log.Logger) calendarsync.OutlookCalendar {
	if cfg.Outlook.ClientID == "" {
		return nil
	}
	tok, err := outlook.ReadToken(cfg.Outlook.TokenPath)
	if err != nil {
		logger.Warnf(ctx, "Outlook not available (optional): %v", err)
		return nil
	}
	client, err := outlook.New(ctx, outlook.Config{
		TenantID:     cfg.Outlook.TenantID,
		ClientID:     cfg.Outlook.ClientID,
		ClientSecret: cfg.Outlook.ClientSecret,
		Token:        tok,
	})
	if err != nil {
		logger.Warnf(ctx, "Outlook not available (optional): %v", err)
		return nil
	}
	logger.Info(ctx, "Outlook initialized")
	return client
}

// initLLM returns nil when no provider is usable; extraction then runs on
// the keyword scan and prep material on the built-in samples.
func initLLM(ctx context.Context, cfg *config.Config, logger log.Logger) llmprovider.TextGenerator {
	if len(cfg.LLM.Providers) == 0 {
		logger.Warn(ctx, "No LLM providers configured")
		return nil
	}

	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	if err != nil {
		logger.Warnf(ctx, "LLM disabled: %v", err)
		return nil
	}

	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "LLM disabled: %v", err)
		return nil
	}

	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	return llmprovider.NewManager(providers, managerCfg, logger)
}
