package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "productivity-calendar/internal/auth/delivery/http"
	authRepo "productivity-calendar/internal/auth/repository/orm"
	authUC "productivity-calendar/internal/auth/usecase"
	syncHTTP "productivity-calendar/internal/calendarsync/delivery/http"
	syncRepository "productivity-calendar/internal/calendarsync/repository"
	syncRepo "productivity-calendar/internal/calendarsync/repository/orm"
	syncUC "productivity-calendar/internal/calendarsync/usecase"
	"productivity-calendar/internal/document"
	documentHTTP "productivity-calendar/internal/document/delivery/http"
	"productivity-calendar/internal/document/extractor"
	documentUC "productivity-calendar/internal/document/usecase"
	eventHTTP "productivity-calendar/internal/event/delivery/http"
	eventRepository "productivity-calendar/internal/event/repository"
	eventRepo "productivity-calendar/internal/event/repository/orm"
	eventUC "productivity-calendar/internal/event/usecase"
	"productivity-calendar/internal/middleware"
	scheduleHTTP "productivity-calendar/internal/schedule/delivery/http"
	scheduleUC "productivity-calendar/internal/schedule/usecase"
	"productivity-calendar/internal/task"
	taskHTTP "productivity-calendar/internal/task/delivery/http"
	taskRepository "productivity-calendar/internal/task/repository"
	taskRepo "productivity-calendar/internal/task/repository/orm"
	taskUCPkg "productivity-calendar/internal/task/usecase"
)

type repositories struct {
	tasks        taskRepository.Repository
	events       eventRepository.Repository
	integrations syncRepository.Repository
}

func (srv *HTTPServer) newRepositories() repositories {
	return repositories{
		tasks:        taskRepo.New(srv.db, srv.l),
		events:       eventRepo.New(srv.db, srv.l),
		integrations: syncRepo.New(srv.db, srv.l),
	}
}

// setupAuthDomain registers /api/v1/auth.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := authRepo.New(srv.db, srv.l)
	uc := authUC.New(srv.l, repo, srv.jwt)
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}

// setupTaskDomain registers /api/v1/tasks and returns the use case the
// document domain creates tasks through.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repos repositories) task.UseCase {
	uc := taskUCPkg.New(srv.l, repos.tasks, srv.llm)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc
}

// setupEventDomain registers /api/v1/events.
func (srv *HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repos repositories) {
	uc := eventUC.New(srv.l, repos.events)
	h := eventHTTP.New(srv.l, uc)
	eventHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Event domain registered")
}

// setupScheduleDomain registers the workload overview and prep-session scheduling.
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repos repositories) {
	uc := scheduleUC.New(srv.l, repos.tasks, repos.events, srv.planner)
	h := scheduleHTTP.New(srv.l, uc)
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
}

// setupDocumentDomain registers syllabus upload and text parsing and returns
// the use case the Gmail scan extracts through.
func (srv *HTTPServer) setupDocumentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase) document.UseCase {
	ex := extractor.New(srv.l, srv.llm, srv.dates, srv.extraction)
	uc := documentUC.New(srv.l, tasks, ex, srv.cache, srv.previewChars)
	h := documentHTTP.New(srv.l, uc)
	documentHTTP.RegisterRoutes(api, h, mw)

	if srv.llm == nil {
		srv.l.Warnf(ctx, "Document domain registered without an LLM; extraction uses the keyword scan only")
		return uc
	}
	srv.l.Infof(ctx, "Document domain registered")
	return uc
}

// setupCalendarSyncDomain registers calendar import, the Gmail scan and the
// integration list, plus the periodic sync job when configured.
func (srv *HTTPServer) setupCalendarSyncDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repos repositories, documents document.UseCase) error {
	uc := syncUC.New(srv.l, syncUC.Sources{
		Google:     srv.calendar,
		CalendarID: srv.calendarID,
		Outlook:    srv.outlook,
		Mail:       srv.mail,
	}, repos.events, repos.integrations, documents)
	h := syncHTTP.New(srv.l, uc)
	syncHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar == nil && srv.outlook == nil {
		srv.l.Infof(ctx, "Calendar sync domain registered; no calendar configured")
		return nil
	}
	if srv.syncCron.Spec == "" || srv.syncCron.OwnerID == "" {
		srv.l.Infof(ctx, "Calendar sync domain registered; periodic sync disabled")
		return nil
	}

	c, err := syncUC.StartCron(srv.l, uc, srv.syncCron)
	if err != nil {
		return err
	}
	srv.stopCron = func() { <-c.Stop().Done() }
	srv.l.Infof(ctx, "Calendar sync domain registered with periodic sync")
	return nil
}
