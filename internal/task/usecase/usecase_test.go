package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"productivity-calendar/internal/model"
	"productivity-calendar/internal/task"
	"productivity-calendar/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	tasks   map[string]model.Task
	seq     int
	failAll bool
}

func newMemRepo() *memRepo {
	return &memRepo{tasks: map[string]model.Task{}}
}

func (r *memRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if r.failAll {
		return model.Task{}, repository.ErrFailedToInsert
	}
	r.seq++
	t := model.Task{
		ID:               fmt.Sprintf("t%d", r.seq),
		OwnerID:          opt.OwnerID,
		Title:            opt.Title,
		Description:      opt.Description,
		Deadline:         opt.Deadline,
		EstimatedHours:   opt.EstimatedHours,
		Priority:         opt.Priority,
		TaskType:         opt.TaskType,
		SourceType:       opt.SourceType,
		SourceFile:       opt.SourceFile,
		ExtractionMethod: opt.ExtractionMethod,
		PrepMaterial:     opt.PrepMaterial,
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memRepo) CreateTasks(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	var out []model.Task
	for _, o := range opts {
		t, err := r.CreateTask(ctx, o)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if r.failAll {
		return model.Task{}, repository.ErrFailedToGet
	}
	t, ok := r.tasks[opt.ID]
	if !ok || t.OwnerID != opt.OwnerID {
		return model.Task{}, nil
	}
	return t, nil
}

func (r *memRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, t := range r.tasks {
		if t.OwnerID == opt.OwnerID {
			out = append(out, t)
		}
	}
	return out, len(out), nil
}

func (r *memRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if _, ok := r.tasks[opt.Task.ID]; !ok {
		return model.Task{}, nil
	}
	r.tasks[opt.Task.ID] = opt.Task
	return opt.Task, nil
}

func (r *memRepo) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	delete(r.tasks, opt.ID)
	return nil
}

type mockLLM struct {
	answer string
	err    error
	calls  int
}

func (m *mockLLM) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	m.calls++
	return m.answer, m.err
}

var owner = model.Scope{UserID: "u1"}

func TestCreate(t *testing.T) {
	deadline := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
		check   func(t *testing.T, out task.CreateOutput)
	}{
		{
			name:  "defaults applied",
			input: task.CreateInput{Title: "  Essay  ", Deadline: &deadline},
			check: func(t *testing.T, out task.CreateOutput) {
				if out.Task.Title != "Essay" {
					t.Errorf("title = %q", out.Task.Title)
				}
				if out.Task.Priority != model.PriorityMedium || out.Task.TaskType != model.TaskTypeOther {
					t.Errorf("defaults not applied: %+v", out.Task)
				}
				if out.Task.EstimatedHours != model.DefaultEstimatedHours {
					t.Errorf("estimated hours = %v", out.Task.EstimatedHours)
				}
				if out.Task.SourceType != model.SourceTypeManual {
					t.Errorf("source type = %q", out.Task.SourceType)
				}
			},
		},
		{name: "empty title", input: task.CreateInput{Title: "   "}, wantErr: task.ErrEmptyTitle},
		{name: "bad priority", input: task.CreateInput{Title: "x", Priority: "urgent"}, wantErr: task.ErrInvalidPriority},
		{name: "bad type", input: task.CreateInput{Title: "x", TaskType: "chore"}, wantErr: task.ErrInvalidTaskType},
		{name: "negative hours", input: task.CreateInput{Title: "x", EstimatedHours: -1}, wantErr: task.ErrInvalidEstimate},
		{
			name:  "prep for exam",
			input: task.CreateInput{Title: "Midterm", TaskType: model.TaskTypeExamPrep, GeneratePrep: true},
			check: func(t *testing.T, out task.CreateOutput) {
				if out.PrepMaterial.Kind() != model.PrepKindExam {
					t.Fatalf("kind = %q", out.PrepMaterial.Kind())
				}
				if len(out.Task.PrepMaterial) == 0 {
					t.Error("prep material not stored")
				}
			},
		},
		{
			name:  "prep ignored for reading",
			input: task.CreateInput{Title: "Chapter 3", TaskType: model.TaskTypeReading, GeneratePrep: true},
			check: func(t *testing.T, out task.CreateOutput) {
				if !out.PrepMaterial.IsZero() {
					t.Errorf("unexpected prep %q", out.PrepMaterial.Kind())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&mockLogger{}, newMemRepo(), nil)
			out, err := uc.Create(context.Background(), owner, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, out)
			}
		})
	}
}

func TestCreateBulk(t *testing.T) {
	repo := newMemRepo()
	uc := New(&mockLogger{}, repo, nil)

	out, err := uc.CreateBulk(context.Background(), owner, task.CreateBulkInput{
		Tasks: []task.CreateInput{
			{Title: "Assignment 1", TaskType: model.TaskTypeAssignment},
			{Title: ""},
			{Title: "Final Exam", TaskType: model.TaskTypeExamPrep, EstimatedHours: 10},
		},
		SourceType:       model.SourceTypeSyllabus,
		SourceFile:       "cs101.pdf",
		ExtractionMethod: model.ExtractionMethodFallback,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("created %d tasks, want 2", len(out.Tasks))
	}
	for _, tk := range out.Tasks {
		if tk.SourceFile != "cs101.pdf" || tk.ExtractionMethod != model.ExtractionMethodFallback || tk.OwnerID != "u1" {
			t.Errorf("provenance not set: %+v", tk)
		}
	}

	if _, err := uc.CreateBulk(context.Background(), owner, task.CreateBulkInput{Tasks: []task.CreateInput{{Title: " "}}}); !errors.Is(err, task.ErrNoTasksToCreate) {
		t.Errorf("err = %v, want ErrNoTasksToCreate", err)
	}
}

func TestDetailNotFoundAcrossOwners(t *testing.T) {
	repo := newMemRepo()
	uc := New(&mockLogger{}, repo, nil)
	created, _ := uc.Create(context.Background(), owner, task.CreateInput{Title: "Mine"})

	if _, err := uc.Detail(context.Background(), model.Scope{UserID: "u2"}, created.Task.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
	if _, err := uc.Detail(context.Background(), owner, created.Task.ID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpdate(t *testing.T) {
	newTitle := "Renamed"
	badHours := 0.0
	hours := 8.0
	high := model.PriorityHigh
	reading := model.TaskTypeReading
	deadline := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   task.UpdateInput
		wantErr error
		check   func(t *testing.T, got model.Task)
	}{
		{
			name:  "partial",
			input: task.UpdateInput{Title: &newTitle, EstimatedHours: &hours, Priority: &high},
			check: func(t *testing.T, got model.Task) {
				if got.Title != "Renamed" || got.EstimatedHours != 8 || got.Priority != high {
					t.Errorf("not applied: %+v", got)
				}
				if got.Description != "keep me" {
					t.Errorf("description changed: %q", got.Description)
				}
			},
		},
		{name: "zero hours rejected", input: task.UpdateInput{EstimatedHours: &badHours}, wantErr: task.ErrInvalidEstimate},
		{
			name:  "clear deadline",
			input: task.UpdateInput{ClearDeadline: true, Deadline: &deadline},
			check: func(t *testing.T, got model.Task) {
				if got.Deadline != nil {
					t.Errorf("deadline = %v, want nil", got.Deadline)
				}
			},
		},
		{
			name:  "type change drops prep",
			input: task.UpdateInput{TaskType: &reading},
			check: func(t *testing.T, got model.Task) {
				if got.PrepMaterial != nil {
					t.Errorf("prep material kept after type change")
				}
			},
		},
		{name: "missing", input: task.UpdateInput{ID: "nope"}, wantErr: task.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&mockLogger{}, newMemRepo(), nil)
			created, err := uc.Create(context.Background(), owner, task.CreateInput{
				Title: "Midterm", Description: "keep me", Deadline: &deadline,
				TaskType: model.TaskTypeExamPrep, GeneratePrep: true,
			})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if tt.input.ID == "" {
				tt.input.ID = created.Task.ID
			}

			out, err := uc.Update(context.Background(), owner, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, out.Task)
			}
		})
	}
}

func TestToggleCompleteAndDelete(t *testing.T) {
	uc := New(&mockLogger{}, newMemRepo(), nil)
	created, _ := uc.Create(context.Background(), owner, task.CreateInput{Title: "x"})

	out, err := uc.ToggleComplete(context.Background(), owner, created.Task.ID)
	if err != nil || !out.Task.Completed {
		t.Fatalf("toggle on: %v %+v", err, out.Task)
	}
	out, _ = uc.ToggleComplete(context.Background(), owner, created.Task.ID)
	if out.Task.Completed {
		t.Error("toggle off failed")
	}

	if err := uc.Delete(context.Background(), owner, created.Task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(context.Background(), owner, created.Task.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestRegeneratePrep(t *testing.T) {
	t.Run("llm answer is used", func(t *testing.T) {
		llm := &mockLLM{answer: "```json\n{\"company_research\":[\"Acme\"],\"common_questions\":[{\"question\":\"Why Acme?\"}],\"technical_topics\":[],\"preparation_tips\":[]}\n```"}
		uc := New(&mockLogger{}, newMemRepo(), llm)
		created, _ := uc.Create(context.Background(), owner, task.CreateInput{Title: "Acme interview", TaskType: model.TaskTypeInterviewPrep})

		out, err := uc.RegeneratePrep(context.Background(), owner, created.Task.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		iv, ok := out.PrepMaterial.Interview()
		if !ok || iv.CommonQuestions[0].Question != "Why Acme?" {
			t.Errorf("prep = %+v", out.PrepMaterial)
		}
		if _, ok := out.PrepMaterial.Exam(); ok {
			t.Error("exam accessor must not answer for interview prep")
		}
	})

	t.Run("llm failure falls back to sample", func(t *testing.T) {
		llm := &mockLLM{err: errors.New("down")}
		uc := New(&mockLogger{}, newMemRepo(), llm)
		created, _ := uc.Create(context.Background(), owner, task.CreateInput{Title: "Final", TaskType: model.TaskTypeExamPrep})

		out, err := uc.RegeneratePrep(context.Background(), owner, created.Task.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := out.PrepMaterial.Exam(); !ok {
			t.Errorf("kind = %q, want exam_prep", out.PrepMaterial.Kind())
		}
		if llm.calls != 1 {
			t.Errorf("llm calls = %d", llm.calls)
		}
	})

	t.Run("garbage falls back to sample", func(t *testing.T) {
		uc := New(&mockLogger{}, newMemRepo(), &mockLLM{answer: "I cannot help with that"})
		created, _ := uc.Create(context.Background(), owner, task.CreateInput{Title: "Final", TaskType: model.TaskTypeExamPrep})

		out, err := uc.RegeneratePrep(context.Background(), owner, created.Task.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ex, ok := out.PrepMaterial.Exam(); !ok || len(ex.Flashcards) == 0 {
			t.Errorf("sample exam prep expected, got %+v", out.PrepMaterial)
		}
	})

	t.Run("unsupported type", func(t *testing.T) {
		uc := New(&mockLogger{}, newMemRepo(), nil)
		created, _ := uc.Create(context.Background(), owner, task.CreateInput{Title: "Read", TaskType: model.TaskTypeReading})
		if _, err := uc.RegeneratePrep(context.Background(), owner, created.Task.ID); !errors.Is(err, task.ErrPrepNotSupported) {
			t.Errorf("err = %v, want ErrPrepNotSupported", err)
		}
	})
}

func TestListRejectsUnknownType(t *testing.T) {
	uc := New(&mockLogger{}, newMemRepo(), nil)
	if _, err := uc.List(context.Background(), owner, task.ListInput{TaskType: "chore"}); !errors.Is(err, task.ErrInvalidTaskType) {
		t.Errorf("err = %v", err)
	}
	out, err := uc.List(context.Background(), owner, task.ListInput{Limit: 10000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Limit != defaultListLimit {
		t.Errorf("limit = %d, want %d", out.Limit, defaultListLimit)
	}
}
