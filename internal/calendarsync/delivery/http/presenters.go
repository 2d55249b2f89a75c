package http

import (
	"time"

	"productivity-calendar/internal/calendarsync"
	"productivity-calendar/internal/model"
	taskHTTP "productivity-calendar/internal/task/delivery/http"
)

type syncReq struct {
	DaysAhead int `form:"days_ahead"`
}

func (r syncReq) toInput() calendarsync.SyncInput {
	return calendarsync.SyncInput{DaysAhead: r.DaysAhead}
}

type syncResp struct {
	Fetched   int `json:"fetched"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Skipped   int `json:"skipped"`
}

func newSyncResp(o calendarsync.SyncOutput) syncResp {
	return syncResp{
		Fetched:   o.Fetched,
		Created:   o.Created,
		Updated:   o.Updated,
		Unchanged: o.Unchanged,
		Skipped:   o.Skipped,
	}
}

type mailScanReq struct {
	DaysBack    int  `form:"days_back"`
	CreateTasks bool `form:"create_tasks"`
}

func (r mailScanReq) toInput() calendarsync.MailScanInput {
	return calendarsync.MailScanInput{DaysBack: r.DaysBack, CreateTasks: r.CreateTasks}
}

type deadlineResp struct {
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	AllDay         bool      `json:"all_day"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	EstimatedHours float64   `json:"estimated_hours"`
}

type mailMessageResp struct {
	MessageID string              `json:"message_id"`
	Subject   string              `json:"subject"`
	From      string              `json:"from"`
	Received  *time.Time          `json:"received,omitempty"`
	Deadlines []deadlineResp      `json:"deadlines"`
	Tasks     []taskHTTP.TaskResp `json:"tasks"`
}

type mailScanResp struct {
	Message        string            `json:"message"`
	Fetched        int               `json:"fetched"`
	Scanned        int               `json:"scanned"`
	Skipped        int               `json:"skipped"`
	DeadlinesFound int               `json:"deadlines_found"`
	TasksCreated   int               `json:"tasks_created"`
	Messages       []mailMessageResp `json:"messages"`
}

func newMailScanResp(o calendarsync.MailScanOutput) mailScanResp {
	resp := mailScanResp{
		Message:      "Gmail scan complete",
		Fetched:      o.Fetched,
		Scanned:      o.Scanned,
		Skipped:      o.Skipped,
		TasksCreated: o.TasksCreated,
		Messages:     make([]mailMessageResp, 0, len(o.Messages)),
	}
	for _, m := range o.Messages {
		mr := mailMessageResp{
			MessageID: m.MessageID,
			Subject:   m.Subject,
			From:      m.From,
			Deadlines: make([]deadlineResp, 0, len(m.Deadlines)),
			Tasks:     make([]taskHTTP.TaskResp, 0, len(m.Tasks)),
		}
		if !m.Received.IsZero() {
			received := m.Received
			mr.Received = &received
		}
		for _, d := range m.Deadlines {
			mr.Deadlines = append(mr.Deadlines, deadlineResp{
				Title:          d.Title,
				Date:           d.Date,
				AllDay:         d.AllDay,
				Category:       string(d.Category),
				Description:    d.Description,
				EstimatedHours: d.EstimatedHours,
			})
		}
		for _, t := range m.Tasks {
			mr.Tasks = append(mr.Tasks, taskHTTP.NewTaskResp(t))
		}
		resp.DeadlinesFound += len(mr.Deadlines)
		resp.Messages = append(resp.Messages, mr)
	}
	return resp
}

type integrationResp struct {
	ID        string     `json:"id"`
	Provider  string     `json:"provider"`
	IsActive  bool       `json:"is_active"`
	LastSync  *time.Time `json:"last_sync"`
	CreatedAt time.Time  `json:"created_at"`
}

type integrationsResp struct {
	Integrations []integrationResp `json:"integrations"`
}

func newIntegrationsResp(rows []model.CalendarIntegration) integrationsResp {
	resp := integrationsResp{Integrations: make([]integrationResp, 0, len(rows))}
	for _, r := range rows {
		resp.Integrations = append(resp.Integrations, integrationResp{
			ID:        r.ID,
			Provider:  string(r.Provider),
			IsActive:  r.IsActive,
			LastSync:  r.LastSync,
			CreatedAt: r.CreatedAt,
		})
	}
	return resp
}
