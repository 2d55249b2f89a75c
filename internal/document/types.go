package document

import (
	"time"

	"productivity-calendar/internal/document/extractor"
	"productivity-calendar/internal/model"
)

const (
	DefaultPreviewChars = 500
	DefaultTextContext  = "general"
)

// --- UseCase Inputs ---

type UploadInput struct {
	Filename    string
	Content     []byte
	CourseStart *time.Time
}

type ParseTextInput struct {
	Text string
	// Context names the kind of text, e.g. "email" or "syllabus".
	Context     string
	CourseStart *time.Time
	// Source tags the created tasks. Zero means model.SourceTypeText.
	Source     model.SourceType
	SourceFile string
	// DryRun reports the deadlines without creating tasks.
	DryRun bool
}

// --- UseCase Outputs ---

type ExtractOutput struct {
	Message string
	Tasks   []model.Task
	// Deadlines is what the pipeline found, whether or not tasks were created.
	Deadlines []extractor.Deadline
	Method    model.ExtractionMethod
	// Preview is the start of the extracted text; only set for uploads.
	Preview   string
	Truncated bool
}
