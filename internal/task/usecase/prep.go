package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"productivity-calendar/internal/model"
	"productivity-calendar/internal/task"
	"productivity-calendar/pkg/llmprovider"
)

const prepSystemPrompt = "You are an expert study coach and career advisor. Answer with JSON only."

// RegeneratePrep replaces the stored prep material of an exam or interview task.
func (uc *implUseCase) RegeneratePrep(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	if !t.TaskType.SupportsPrep() {
		return task.DetailOutput{}, task.ErrPrepNotSupported
	}

	prep := uc.generatePrep(ctx, t.Title, t.TaskType, t.Description)
	t.PrepMaterial, err = encodePrep(prep)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RegeneratePrep encodePrep: %v", err)
		return task.DetailOutput{}, err
	}

	out, err := uc.save(ctx, "RegeneratePrep", t)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: out.Task, PrepMaterial: prep}, nil
}

// generatePrep asks the LLM for material of the variant matching taskType and
// falls back to a sample when the LLM is missing, fails or answers garbage.
func (uc *implUseCase) generatePrep(ctx context.Context, title string, taskType model.TaskType, description string) model.PrepMaterial {
	if uc.llm == nil {
		return samplePrep(title, taskType)
	}

	raw, err := uc.llm.GenerateText(ctx, prepSystemPrompt, buildPrepPrompt(title, taskType, description))
	if err != nil {
		uc.l.Warnf(ctx, "uc.generatePrep llm: %v", err)
		return samplePrep(title, taskType)
	}

	prep, err := parsePrep(taskType, llmprovider.SanitizeJSON(raw))
	if err != nil {
		uc.l.Warnf(ctx, "uc.generatePrep parse: %v", err)
		return samplePrep(title, taskType)
	}
	return prep
}

func buildPrepPrompt(title string, taskType model.TaskType, description string) string {
	switch taskType {
	case model.TaskTypeInterviewPrep:
		return fmt.Sprintf(`Generate interview preparation material for: %s
Description: %s

Return a JSON object with exactly these keys:
- "company_research": array of strings (research points, if a company is mentioned)
- "common_questions": array of {"question": string, "tips": string}, 5 to 7 items
- "technical_topics": array of strings
- "preparation_tips": array of strings`, title, description)
	default:
		return fmt.Sprintf(`Generate exam preparation material for: %s
Description: %s

Return a JSON object with exactly these keys:
- "flashcards": array of {"front": string, "back": string}, 10 items
- "quiz_questions": array of {"question": string, "options": [4 strings], "answer": string, "explanation": string}, 5 items
- "key_concepts": array of strings
- "study_tips": array of strings`, title, description)
	}
}

func parsePrep(taskType model.TaskType, raw string) (model.PrepMaterial, error) {
	switch taskType {
	case model.TaskTypeInterviewPrep:
		var v model.InterviewPrep
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return model.PrepMaterial{}, err
		}
		if len(v.CommonQuestions) == 0 {
			return model.PrepMaterial{}, fmt.Errorf("interview prep without questions")
		}
		return model.NewInterviewPrep(v), nil
	case model.TaskTypeExamPrep:
		var v model.ExamPrep
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return model.PrepMaterial{}, err
		}
		if len(v.Flashcards) == 0 && len(v.KeyConcepts) == 0 {
			return model.PrepMaterial{}, fmt.Errorf("exam prep without flashcards or concepts")
		}
		return model.NewExamPrep(v), nil
	default:
		return model.PrepMaterial{}, task.ErrPrepNotSupported
	}
}

func samplePrep(title string, taskType model.TaskType) model.PrepMaterial {
	if taskType == model.TaskTypeInterviewPrep {
		return model.NewInterviewPrep(model.InterviewPrep{
			CompanyResearch: []string{"Research the company mission and values", "Review recent news and product launches"},
			CommonQuestions: []model.InterviewQuestion{
				{Question: "Tell me about yourself", Tips: "Keep it under two minutes and relevant to the role"},
				{Question: "Why do you want to work here?"},
				{Question: "What are your strengths?"},
				{Question: "Describe a challenging project", Tips: "Use the STAR method"},
				{Question: "Where do you see yourself in 5 years?"},
			},
			TechnicalTopics: []string{"Technical skills for " + title, "Soft skills", "Company culture fit"},
			PreparationTips: []string{"Practice the STAR method", "Prepare questions for the interviewer", "Plan your route or test your call setup"},
		})
	}
	return model.NewExamPrep(model.ExamPrep{
		Flashcards: []model.Flashcard{
			{Front: "What are the main topics of " + title + "?", Back: "List them from the syllabus and lecture notes"},
			{Front: "Which topic do you find hardest?", Back: "Schedule extra review time for it"},
		},
		QuizQuestions: []model.QuizQuestion{
			{Question: "Which study technique improves long-term retention most?", Options: []string{"Spaced repetition", "Cramming", "Re-reading", "Highlighting"}, Answer: "Spaced repetition"},
		},
		KeyConcepts: []string{"Core definitions", "Worked examples", "Past exam questions"},
		StudyTips:   []string{"Review notes regularly", "Practice problems under time limits", "Form a study group"},
	})
}
