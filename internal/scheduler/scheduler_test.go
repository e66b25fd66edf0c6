package scheduler

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	runs int
	err  error
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run() error {
	j.runs++
	return j.err
}

type fakeSweeper struct{ calls int }

func (f *fakeSweeper) CleanupExpiredSessions() int {
	f.calls++
	return 0
}

func TestAddJob_InvalidSchedule(t *testing.T) {
	s := New(zerolog.Nop())
	err := s.AddJob("every now and then", &countingJob{})
	assert.Error(t, err)
}

func TestAddJob_Descriptor(t *testing.T) {
	s := New(zerolog.Nop())
	require.NoError(t, s.AddJob("@every 30m", &countingJob{}))
	assert.Len(t, s.cron.Entries(), 1)

	s.Start()
	s.Stop()
}

func TestRunNow_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	s := New(zerolog.New(&buf))
	job := &countingJob{err: errors.New("boom")}

	err := s.RunNow(job)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, job.runs)
	assert.Contains(t, buf.String(), `"job":"counting"`)
	assert.Contains(t, buf.String(), "job failed")
}

func TestSessionCleanupJob(t *testing.T) {
	sweeper := &fakeSweeper{}
	job := &SessionCleanupJob{Sessions: sweeper}

	require.NoError(t, New(zerolog.Nop()).RunNow(job))
	assert.Equal(t, 1, sweeper.calls)
	assert.Equal(t, "session_cleanup", job.Name())
}
