package extractor

import (
	"errors"
	"strings"
	"time"

	"productivity-calendar/internal/model"
)

const (
	DefaultMaxChars       = 6000
	DefaultTimeout        = 45 * time.Second
	DefaultEstimatedHours = 5.0
	maxTitleRunes         = 100
	maxDescriptionRunes   = 300
	contextSyllabus       = "syllabus"
)

// ErrExternalServiceUnavailable marks a text-generation failure. It is
// logged and answered with the keyword fallback, never returned to callers.
var ErrExternalServiceUnavailable = errors.New("text generation service unavailable")

// Category is the kind of item found in a document.
type Category string

const (
	CategoryAssignment   Category = "assignment"
	CategoryExam         Category = "exam"
	CategoryQuiz         Category = "quiz"
	CategoryPresentation Category = "presentation"
	CategoryPaper        Category = "paper"
	CategoryDeadline     Category = "deadline"
	CategoryReading      Category = "reading"
	CategoryProject      Category = "project"
	CategoryInterview    Category = "interview"
)

var categoryAliases = map[string]Category{
	"homework":    CategoryAssignment,
	"lab":         CategoryAssignment,
	"problem set": CategoryAssignment,
	"midterm":     CategoryExam,
	"final":       CategoryExam,
	"test":        CategoryExam,
	"essay":       CategoryPaper,
	"report":      CategoryPaper,
	"due":         CategoryDeadline,
	"submission":  CategoryDeadline,
}

// ParseCategory maps a free-form label to a Category. Unknown labels become
// CategoryDeadline.
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	switch c := Category(s); c {
	case CategoryAssignment, CategoryExam, CategoryQuiz, CategoryPresentation, CategoryPaper,
		CategoryDeadline, CategoryReading, CategoryProject, CategoryInterview:
		return c
	}
	if c, ok := categoryAliases[s]; ok {
		return c
	}
	return CategoryDeadline
}

// TaskType is the task type a deadline of this category is stored as.
func (c Category) TaskType() model.TaskType {
	switch c {
	case CategoryAssignment, CategoryPaper, CategoryProject, CategoryPresentation:
		return model.TaskTypeAssignment
	case CategoryExam, CategoryQuiz:
		return model.TaskTypeExamPrep
	case CategoryInterview:
		return model.TaskTypeInterviewPrep
	case CategoryReading:
		return model.TaskTypeReading
	default:
		return model.TaskTypeOther
	}
}

// Deadline is one dated item found in a document.
type Deadline struct {
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	AllDay         bool      `json:"all_day"`
	Category       Category  `json:"category"`
	Description    string    `json:"description"`
	EstimatedHours float64   `json:"estimated_hours"`
}

// Options carry per-document context.
type Options struct {
	// Context names the kind of text, e.g. "syllabus" or "email".
	Context     string
	CourseStart *time.Time
}

// Result is the outcome of one extraction run.
type Result struct {
	Deadlines []Deadline             `json:"deadlines"`
	Method    model.ExtractionMethod `json:"method"`
	Truncated bool                   `json:"truncated"`
}

// Config tunes the pipeline. Zero values take the package defaults.
type Config struct {
	MaxChars              int
	Timeout               time.Duration
	DefaultEstimatedHours float64
}
