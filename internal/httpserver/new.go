package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"productivity-calendar/internal/calendarsync"
	syncUC "productivity-calendar/internal/calendarsync/usecase"
	"productivity-calendar/internal/document/extractor"
	"productivity-calendar/internal/schedule/planner"
	"productivity-calendar/pkg/cache"
	"productivity-calendar/pkg/datemath"
	"productivity-calendar/pkg/jwt"
	"productivity-calendar/pkg/llmprovider"
	"productivity-calendar/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	db    *gorm.DB
	cache cache.Cache
	jwt   jwt.Manager

	// Document extraction
	llm          llmprovider.TextGenerator
	dates        *datemath.Parser
	extraction   extractor.Config
	previewChars int

	planner      planner.Options
	uploadPerMin int

	// External sources, optional
	calendar   calendarsync.RemoteCalendar
	calendarID string
	outlook    calendarsync.OutlookCalendar
	mail       calendarsync.Mailbox
	syncCron   syncUC.CronConfig
	stopCron   func()
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	DB         *gorm.DB
	Cache      cache.Cache
	JWTManager jwt.Manager

	// LLM may be nil; extraction then relies on the keyword scan.
	LLM          llmprovider.TextGenerator
	DateParser   *datemath.Parser
	Extraction   extractor.Config
	PreviewChars int

	Planner      planner.Options
	UploadPerMin int

	// Calendar, Outlook and Mail may be nil. SyncCron.Spec and
	// SyncCron.OwnerID enable the periodic calendar sync.
	Calendar   calendarsync.RemoteCalendar
	CalendarID string
	Outlook    calendarsync.OutlookCalendar
	Mail       calendarsync.Mailbox
	SyncCron   syncUC.CronConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: timeout,
		db:              cfg.DB,
		cache:           cfg.Cache,
		jwt:             cfg.JWTManager,
		llm:             cfg.LLM,
		dates:           cfg.DateParser,
		extraction:      cfg.Extraction,
		previewChars:    cfg.PreviewChars,
		planner:         cfg.Planner,
		uploadPerMin:    cfg.UploadPerMin,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		outlook:         cfg.Outlook,
		mail:            cfg.Mail,
		syncCron:        cfg.SyncCron,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwt == nil {
		return errors.New("jwt manager is required")
	}
	if srv.cache == nil {
		return errors.New("cache is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
