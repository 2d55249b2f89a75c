package http

import (
	"time"

	"productivity-calendar/internal/model"
	"productivity-calendar/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title          string     `json:"title"           binding:"required,max=255"`
	Description    string     `json:"description"`
	Deadline       *time.Time `json:"deadline"`
	EstimatedHours float64    `json:"estimated_hours" binding:"gte=0"`
	Priority       string     `json:"priority"        binding:"omitempty,oneof=low medium high"`
	TaskType       string     `json:"task_type"`
	GeneratePrep   bool       `json:"generate_prep"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:          r.Title,
		Description:    r.Description,
		Deadline:       r.Deadline,
		EstimatedHours: r.EstimatedHours,
		Priority:       model.Priority(r.Priority),
		TaskType:       model.TaskType(r.TaskType),
		GeneratePrep:   r.GeneratePrep,
	}
}

type listReq struct {
	Completed *bool  `form:"completed"`
	TaskType  string `form:"task_type"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Completed: r.Completed,
		TaskType:  model.TaskType(r.TaskType),
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

type updateReq struct {
	ID             string     `json:"-"`
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Deadline       *time.Time `json:"deadline"`
	ClearDeadline  bool       `json:"clear_deadline"`
	EstimatedHours *float64   `json:"estimated_hours"`
	Priority       *string    `json:"priority"`
	TaskType       *string    `json:"task_type"`
	Completed      *bool      `json:"completed"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Deadline:       r.Deadline,
		ClearDeadline:  r.ClearDeadline,
		EstimatedHours: r.EstimatedHours,
		Completed:      r.Completed,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.TaskType != nil {
		tt := model.TaskType(*r.TaskType)
		in.TaskType = &tt
	}
	return in
}

// --- Response DTOs ---

type TaskResp struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Deadline         *time.Time          `json:"deadline"`
	EstimatedHours   float64             `json:"estimated_hours"`
	Priority         string              `json:"priority"`
	TaskType         string              `json:"task_type"`
	Completed        bool                `json:"completed"`
	SourceType       string              `json:"source_type"`
	SourceFile       string              `json:"source_file,omitempty"`
	ExtractionMethod string              `json:"extraction_method,omitempty"`
	PrepMaterial     *model.PrepMaterial `json:"prep_material,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// NewTaskResp renders a task. Exported for the document and schedule handlers.
func NewTaskResp(t model.Task) TaskResp {
	resp := TaskResp{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Deadline:         t.Deadline,
		EstimatedHours:   t.EstimatedHours,
		Priority:         string(t.Priority),
		TaskType:         string(t.TaskType),
		Completed:        t.Completed,
		SourceType:       string(t.SourceType),
		SourceFile:       t.SourceFile,
		ExtractionMethod: string(t.ExtractionMethod),
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
	if prep, err := model.PrepMaterialOf(t); err == nil && !prep.IsZero() {
		resp.PrepMaterial = &prep
	}
	return resp
}

type itemResp struct {
	Task TaskResp `json:"task"`
}

func (h *handler) newItemResp(t model.Task) itemResp {
	return itemResp{Task: NewTaskResp(t)}
}

type listResp struct {
	Tasks  []TaskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]TaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = NewTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total, Limit: out.Limit, Offset: out.Offset}
}
