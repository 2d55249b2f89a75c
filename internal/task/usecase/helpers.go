package usecase

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	"productivity-calendar/internal/model"
	"productivity-calendar/internal/task"
)

// normalizeCreateInput validates input and fills defaults in place.
func normalizeCreateInput(in *task.CreateInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return task.ErrEmptyTitle
	}

	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	} else if !in.Priority.Valid() {
		return task.ErrInvalidPriority
	}

	if in.TaskType == "" {
		in.TaskType = model.TaskTypeOther
	} else if !in.TaskType.Valid() {
		return task.ErrInvalidTaskType
	}

	switch {
	case in.EstimatedHours < 0:
		return task.ErrInvalidEstimate
	case in.EstimatedHours == 0:
		in.EstimatedHours = model.DefaultEstimatedHours
	}
	return nil
}

func encodePrep(p model.PrepMaterial) (datatypes.JSON, error) {
	if p.IsZero() {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)
