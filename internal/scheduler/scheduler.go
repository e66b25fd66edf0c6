// Package scheduler runs periodic maintenance jobs
package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is a unit of periodic work
type Job interface {
	Run() error
	Name() string
}

// Scheduler runs registered jobs on cron schedules
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New creates a scheduler
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler started")
}

// Stop waits for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}

// AddJob registers a job. Schedules use cron syntax or descriptors such as
// "@hourly" and "@every 30m".
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() { s.run(job) })
	if err != nil {
		return err
	}

	s.log.Info().Str("schedule", schedule).Str("job", job.Name()).Msg("job registered")
	return nil
}

// RunNow executes a job immediately, outside its schedule
func (s *Scheduler) RunNow(job Job) error {
	return s.run(job)
}

func (s *Scheduler) run(job Job) error {
	if err := job.Run(); err != nil {
		s.log.Error().Err(err).Str("job", job.Name()).Msg("job failed")
		return err
	}
	s.log.Debug().Str("job", job.Name()).Msg("job completed")
	return nil
}

// SessionSweeper removes expired sessions
type SessionSweeper interface {
	CleanupExpiredSessions() int
}

// SessionCleanupJob evicts expired advisory sessions
type SessionCleanupJob struct {
	Sessions SessionSweeper
}

func (j *SessionCleanupJob) Name() string { return "session_cleanup" }

func (j *SessionCleanupJob) Run() error {
	j.Sessions.CleanupExpiredSessions()
	return nil
}
