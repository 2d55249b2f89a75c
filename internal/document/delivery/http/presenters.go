package http

import (
	"time"

	"productivity-calendar/internal/document"
	taskHTTP "productivity-calendar/internal/task/delivery/http"
)

type parseTextReq struct {
	Text        string     `json:"text" binding:"required,max=100000"`
	Context     string     `json:"context" binding:"max=64"`
	CourseStart *time.Time `json:"course_start"`
}

func (r parseTextReq) toInput() document.ParseTextInput {
	return document.ParseTextInput{
		Text:        r.Text,
		Context:     r.Context,
		CourseStart: r.CourseStart,
	}
}

type extractResp struct {
	Message          string              `json:"message"`
	TasksCreated     int                 `json:"tasks_created"`
	Tasks            []taskHTTP.TaskResp `json:"tasks"`
	ExtractionMethod string              `json:"extraction_method"`
	Truncated        bool                `json:"truncated"`
	Preview          string              `json:"extracted_text_preview,omitempty"`
}

func (h *handler) newExtractResp(o document.ExtractOutput) extractResp {
	tasks := make([]taskHTTP.TaskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, taskHTTP.NewTaskResp(t))
	}
	return extractResp{
		Message:          o.Message,
		TasksCreated:     len(tasks),
		Tasks:            tasks,
		ExtractionMethod: string(o.Method),
		Truncated:        o.Truncated,
		Preview:          o.Preview,
	}
}
