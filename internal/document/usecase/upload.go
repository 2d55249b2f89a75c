package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"productivity-calendar/internal/document"
	"productivity-calendar/internal/document/extractor"
	"productivity-calendar/internal/model"
	"productivity-calendar/internal/task"
	"productivity-calendar/pkg/doctext"
)

// UploadSyllabus extracts text from an uploaded file and creates a task per
// dated item found in it.
func (uc *implUseCase) UploadSyllabus(ctx context.Context, sc model.Scope, input document.UploadInput) (document.ExtractOutput, error) {
	format, err := doctext.FormatOf(input.Filename)
	if err != nil {
		return document.ExtractOutput{}, document.ErrUnsupportedFormat
	}

	text, err := doctext.Extract(input.Content, string(format))
	if err != nil {
		uc.l.Warnf(ctx, "uc.UploadSyllabus doctext.Extract %q: %v", input.Filename, err)
		return document.ExtractOutput{}, document.ErrUnreadable
	}

	res := uc.extract(ctx, text, extractor.Options{Context: "syllabus", CourseStart: input.CourseStart})
	tasks, err := uc.createTasks(ctx, sc, res, model.SourceTypeSyllabus, input.Filename)
	if err != nil {
		return document.ExtractOutput{}, err
	}

	return document.ExtractOutput{
		Message:   fmt.Sprintf("Successfully processed %s", input.Filename),
		Tasks:     tasks,
		Deadlines: res.Deadlines,
		Method:    res.Method,
		Preview:   preview(text, uc.previewChars),
		Truncated: res.Truncated,
	}, nil
}

// ParseText runs the pipeline over pasted text such as an email.
func (uc *implUseCase) ParseText(ctx context.Context, sc model.Scope, input document.ParseTextInput) (document.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return document.ExtractOutput{}, document.ErrEmptyText
	}
	kind := strings.TrimSpace(input.Context)
	if kind == "" {
		kind = document.DefaultTextContext
	}

	source := input.Source
	if source == "" {
		source = model.SourceTypeText
	}

	res := uc.extract(ctx, input.Text, extractor.Options{Context: kind, CourseStart: input.CourseStart})
	if input.DryRun {
		return document.ExtractOutput{
			Message:   fmt.Sprintf("Found %d deadlines", len(res.Deadlines)),
			Tasks:     []model.Task{},
			Deadlines: res.Deadlines,
			Method:    res.Method,
			Truncated: res.Truncated,
		}, nil
	}

	tasks, err := uc.createTasks(ctx, sc, res, source, input.SourceFile)
	if err != nil {
		return document.ExtractOutput{}, err
	}

	return document.ExtractOutput{
		Message:   "Successfully extracted deadlines from text",
		Tasks:     tasks,
		Deadlines: res.Deadlines,
		Method:    res.Method,
		Truncated: res.Truncated,
	}, nil
}

func (uc *implUseCase) createTasks(ctx context.Context, sc model.Scope, res extractor.Result, source model.SourceType, file string) ([]model.Task, error) {
	if len(res.Deadlines) == 0 {
		uc.l.Infof(ctx, "uc.createTasks: no deadlines found in %s %q", source, file)
		return []model.Task{}, nil
	}

	out, err := uc.tasks.CreateBulk(ctx, sc, toBulkInput(res, source, file))
	if errors.Is(err, task.ErrNoTasksToCreate) {
		return []model.Task{}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.createTasks tasks.CreateBulk: %v", err)
		return nil, err
	}
	return out.Tasks, nil
}
