package model

import (
	"encoding/json"
	"errors"
	"testing"

	"gorm.io/datatypes"
)

func TestPrepMaterialVariantAccess(t *testing.T) {
	exam := NewExamPrep(ExamPrep{KeyConcepts: []string{"recursion"}})

	if exam.Kind() != PrepKindExam {
		t.Fatalf("expected exam kind, got %q", exam.Kind())
	}
	if _, ok := exam.Interview(); ok {
		t.Errorf("exam material must not expose the interview variant")
	}
	got, ok := exam.Exam()
	if !ok || len(got.KeyConcepts) != 1 {
		t.Errorf("unexpected exam variant: %+v", got)
	}
}

func TestPrepMaterialJSON(t *testing.T) {
	in := NewInterviewPrep(InterviewPrep{
		CompanyResearch: []string{"Read the engineering blog"},
		CommonQuestions: []InterviewQuestion{{Question: "Tell me about yourself"}},
	})

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var head map[string]any
	json.Unmarshal(raw, &head)
	if head["kind"] != string(PrepKindInterview) {
		t.Errorf("expected kind tag in JSON, got %s", raw)
	}

	task := Task{PrepMaterial: datatypes.JSON(raw)}
	out, err := PrepMaterialOf(task)
	if err != nil {
		t.Fatalf("PrepMaterialOf: %v", err)
	}
	iv, ok := out.Interview()
	if !ok || iv.CommonQuestions[0].Question != "Tell me about yourself" {
		t.Errorf("unexpected decoded variant: %+v", iv)
	}
}

func TestPrepMaterialUnknownKind(t *testing.T) {
	var p PrepMaterial
	err := json.Unmarshal([]byte(`{"kind":"poetry"}`), &p)
	if !errors.Is(err, ErrUnknownPrepKind) {
		t.Errorf("expected ErrUnknownPrepKind, got %v", err)
	}

	empty, err := PrepMaterialOf(Task{})
	if err != nil || !empty.IsZero() {
		t.Errorf("expected zero material for empty task, got %+v, %v", empty, err)
	}
}
