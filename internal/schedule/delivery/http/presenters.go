package http

import (
	"math"
	"time"

	eventHTTP "productivity-calendar/internal/event/delivery/http"
	"productivity-calendar/internal/schedule"
)

// --- Request DTOs ---

type overviewReq struct {
	DaysAhead int `form:"days_ahead"`
}

func (r overviewReq) toInput() schedule.OverviewInput {
	return schedule.OverviewInput{DaysAhead: r.DaysAhead}
}

type scheduleReq struct {
	TaskID  string `form:"-"`
	Preview bool   `form:"preview"`
}

func (r scheduleReq) toInput() schedule.ScheduleTaskInput {
	return schedule.ScheduleTaskInput{TaskID: r.TaskID, Commit: !r.Preview}
}

// --- Response DTOs ---

type overviewResp struct {
	DaysAhead           int       `json:"days_ahead"`
	WindowStart         time.Time `json:"window_start"`
	WindowEnd           time.Time `json:"window_end"`
	TotalAvailableHours float64   `json:"total_available_hours"`
	BusyHours           float64   `json:"busy_hours"`
	PrepHoursNeeded     float64   `json:"prep_hours_needed"`
	FreeHours           float64   `json:"free_hours"`
	Utilization         float64   `json:"utilization"`
	DisplayUtilization  float64   `json:"display_utilization"`
	IsFeasible          bool      `json:"is_feasible"`
	TaskCount           int       `json:"task_count"`
	EventCount          int       `json:"event_count"`
}

func (h *handler) newOverviewResp(out schedule.OverviewOutput) overviewResp {
	ov := out.Overview
	return overviewResp{
		DaysAhead:           ov.HorizonDays,
		WindowStart:         ov.WindowStart,
		WindowEnd:           ov.WindowEnd,
		TotalAvailableHours: round2(ov.TotalAvailableHours),
		BusyHours:           round2(ov.BusyHours),
		PrepHoursNeeded:     round2(ov.PrepHoursNeeded),
		FreeHours:           round2(ov.FreeHours),
		Utilization:         round2(ov.Utilization),
		DisplayUtilization:  round2(ov.DisplayUtilization),
		IsFeasible:          ov.IsFeasible,
		TaskCount:           ov.TaskCount,
		EventCount:          ov.EventCount,
	}
}

type sessionResp struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	EventType   string    `json:"event_type"`
}

type scheduleResp struct {
	TaskID             string                `json:"task_id"`
	SuggestedSessions  []sessionResp         `json:"suggested_sessions"`
	Requested          int                   `json:"requested"`
	Placed             int                   `json:"placed"`
	Shortfall          int                   `json:"shortfall"`
	SessionLengthHours float64               `json:"session_length_hours"`
	Committed          bool                  `json:"committed"`
	Events             []eventHTTP.EventResp `json:"events,omitempty"`
	Message            string                `json:"message"`
}

func (h *handler) newScheduleResp(out schedule.ScheduleTaskOutput) scheduleResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = sessionResp{
			Title:       s.Title,
			Description: s.Description,
			StartTime:   s.Start,
			EndTime:     s.End,
			EventType:   "prep_session",
		}
	}

	var events []eventHTTP.EventResp
	for _, e := range out.Events {
		events = append(events, eventHTTP.NewEventResp(e))
	}

	return scheduleResp{
		TaskID:             out.Task.ID,
		SuggestedSessions:  sessions,
		Requested:          out.Plan.Requested,
		Placed:             out.Plan.Placed(),
		Shortfall:          out.Plan.Shortfall,
		SessionLengthHours: round2(out.Plan.SessionLength.Hours()),
		Committed:          out.Committed,
		Events:             events,
		Message:            out.Message,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
