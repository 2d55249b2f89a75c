package planner

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

var (
	ErrNonPositiveHorizon = fmt.Errorf("%w: horizon days must be positive", ErrInvalidArgument)
	ErrNonPositiveHours   = fmt.Errorf("%w: estimated hours must be positive", ErrInvalidArgument)
	ErrNoDeadline         = fmt.Errorf("%w: task has no deadline", ErrInvalidState)
	ErrDeadlinePassed     = fmt.Errorf("%w: deadline is not in the future", ErrInvalidState)
	ErrDeadlineTooClose   = fmt.Errorf("%w: less than one whole day before the deadline", ErrInvalidState)
)
