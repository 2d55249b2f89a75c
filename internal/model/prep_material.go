package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownPrepKind is returned when decoding prep material with an unknown kind.
var ErrUnknownPrepKind = errors.New("unknown prep material kind")

type PrepKind string

const (
	PrepKindExam      PrepKind = "exam_prep"
	PrepKindInterview PrepKind = "interview_prep"
	PrepKindGeneral   PrepKind = "general"
)

type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

type ExamPrep struct {
	Flashcards    []Flashcard    `json:"flashcards"`
	QuizQuestions []QuizQuestion `json:"quiz_questions"`
	KeyConcepts   []string       `json:"key_concepts"`
	StudyTips     []string       `json:"study_tips"`
}

type InterviewQuestion struct {
	Question string `json:"question"`
	Tips     string `json:"tips,omitempty"`
}

type InterviewPrep struct {
	CompanyResearch []string            `json:"company_research"`
	CommonQuestions []InterviewQuestion `json:"common_questions"`
	TechnicalTopics []string            `json:"technical_topics"`
	PreparationTips []string            `json:"preparation_tips"`
}

type GeneralPrep struct {
	Notes []string `json:"notes"`
}

// PrepMaterial holds exactly one variant, selected by Kind.
type PrepMaterial struct {
	kind      PrepKind
	exam      *ExamPrep
	interview *InterviewPrep
	general   *GeneralPrep
}

func NewExamPrep(p ExamPrep) PrepMaterial {
	return PrepMaterial{kind: PrepKindExam, exam: &p}
}

func NewInterviewPrep(p InterviewPrep) PrepMaterial {
	return PrepMaterial{kind: PrepKindInterview, interview: &p}
}

func NewGeneralPrep(p GeneralPrep) PrepMaterial {
	return PrepMaterial{kind: PrepKindGeneral, general: &p}
}

// Kind returns the variant tag, empty for the zero value.
func (p PrepMaterial) Kind() PrepKind { return p.kind }

// IsZero reports whether no variant is set.
func (p PrepMaterial) IsZero() bool { return p.kind == "" }

func (p PrepMaterial) Exam() (ExamPrep, bool) {
	if p.kind != PrepKindExam || p.exam == nil {
		return ExamPrep{}, false
	}
	return *p.exam, true
}

func (p PrepMaterial) Interview() (InterviewPrep, bool) {
	if p.kind != PrepKindInterview || p.interview == nil {
		return InterviewPrep{}, false
	}
	return *p.interview, true
}

func (p PrepMaterial) General() (GeneralPrep, bool) {
	if p.kind != PrepKindGeneral || p.general == nil {
		return GeneralPrep{}, false
	}
	return *p.general, true
}

// MarshalJSON renders {"kind": ..., <variant fields>}.
func (p PrepMaterial) MarshalJSON() ([]byte, error) {
	var body any
	switch p.kind {
	case "":
		return []byte("null"), nil
	case PrepKindExam:
		body = struct {
			Kind PrepKind `json:"kind"`
			*ExamPrep
		}{p.kind, p.exam}
	case PrepKindInterview:
		body = struct {
			Kind PrepKind `json:"kind"`
			*InterviewPrep
		}{p.kind, p.interview}
	case PrepKindGeneral:
		body = struct {
			Kind PrepKind `json:"kind"`
			*GeneralPrep
		}{p.kind, p.general}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrepKind, p.kind)
	}
	return json.Marshal(body)
}

// UnmarshalJSON decodes the variant named by "kind".
func (p *PrepMaterial) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = PrepMaterial{}
		return nil
	}

	var head struct {
		Kind PrepKind `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Kind {
	case PrepKindExam:
		var v ExamPrep
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = NewExamPrep(v)
	case PrepKindInterview:
		var v InterviewPrep
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = NewInterviewPrep(v)
	case PrepKindGeneral:
		var v GeneralPrep
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = NewGeneralPrep(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPrepKind, head.Kind)
	}
	return nil
}

// PrepMaterialOf decodes the stored prep material of t. A task without
// material yields the zero value.
func PrepMaterialOf(t Task) (PrepMaterial, error) {
	var p PrepMaterial
	if len(t.PrepMaterial) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(t.PrepMaterial, &p); err != nil {
		return PrepMaterial{}, err
	}
	return p, nil
}
