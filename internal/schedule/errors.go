package schedule

import (
	"fmt"

	"productivity-calendar/internal/schedule/planner"
)

var (
	ErrHorizonTooLarge = fmt.Errorf("%w: days_ahead must be at most %d", planner.ErrInvalidArgument, MaxDaysAhead)
	ErrTaskCompleted   = fmt.Errorf("%w: task is already completed", planner.ErrInvalidState)
)
