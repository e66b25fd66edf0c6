package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputationError(t *testing.T) {
	cause := errors.New("boom")
	var err error = &ComputationError{Stage: StageSimulation, Err: cause}

	assert.True(t, errors.Is(err, ErrComputation))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "simulation stage: boom", err.Error())

	wrapped := fmt.Errorf("analysis: %w", err)
	var ce *ComputationError
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, StageSimulation, ce.Stage)
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("horizon %d is negative", -1)
	assert.True(t, IsInvalidInput(err))
	assert.Contains(t, err.Error(), "horizon -1 is negative")
}

func TestRecoverStage(t *testing.T) {
	run := func() (err error) {
		defer RecoverStage(StageRisk, &err)
		var m map[string]int
		m["x"] = 1
		return nil
	}

	err := run()
	require.Error(t, err)
	var ce *ComputationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, StageRisk, ce.Stage)
}

func TestRecoverStage_NoPanic(t *testing.T) {
	run := func() (err error) {
		defer RecoverStage(StageRisk, &err)
		return nil
	}
	assert.NoError(t, run())
}
