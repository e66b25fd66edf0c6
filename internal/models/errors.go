package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrComputation     = errors.New("computation failed")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Pipeline stage names carried by ComputationError
const (
	StageRisk           = "risk"
	StageAllocation     = "allocation"
	StageSimulation     = "simulation"
	StageRecommendation = "recommendation"
)

// ComputationError reports an unexpected failure inside a pipeline stage
type ComputationError struct {
	Stage string
	Err   error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

// Is makes every ComputationError match ErrComputation
func (e *ComputationError) Is(target error) bool {
	return target == ErrComputation
}

// InvalidInput wraps ErrInvalidInput with a formatted reason
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// RecoverStage converts a panic raised inside a stage into a ComputationError.
// It must be deferred directly:
//
//	defer models.RecoverStage(models.StageSimulation, &err)
func RecoverStage(stage string, err *error) {
	if r := recover(); r != nil {
		*err = &ComputationError{Stage: stage, Err: fmt.Errorf("%v", r)}
	}
}

// IsInvalidInput reports whether err was caused by invalid input
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
