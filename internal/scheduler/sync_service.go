package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/internal/observability"
)

// Upper bound for a single run, scheduled or manual.
const jobTimeout = 5 * time.Minute

var ErrJobRunning = errors.New("scheduler: job already running")

// Job is the unit of work a SyncService runs.
type Job func(ctx context.Context) error

type SyncConfig struct {
	Name         string
	CronSchedule string
	Enabled      bool
}

// JobStatus is what the admin status endpoint reports per job.
type JobStatus struct {
	Name            string     `json:"name"`
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron"`
	Running         bool       `json:"running"`
	Runs            int        `json:"runs"`
	LastStartedAt   *time.Time `json:"lastStartedAt,omitempty"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
	LastError       string     `json:"lastError,omitempty"`
}

// SyncService runs one Job on a cron schedule (UTC) and on demand, never
// twice at the same time.
type SyncService struct {
	scheduler *gocron.Scheduler
	config    SyncConfig
	job       Job
	clock     clockwork.Clock
	metrics   *observability.Metrics

	baseCtx context.Context

	mu              sync.Mutex
	running         bool
	runs            int
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

func NewSyncService(cfg SyncConfig, job Job, clock clockwork.Clock, metrics *observability.Metrics) *SyncService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	logrus.WithFields(logrus.Fields{
		"job":           cfg.Name,
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
	}).Info("scheduler: job configured")

	return &SyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		job:       job,
		clock:     clock,
		metrics:   metrics,
		baseCtx:   context.Background(),
	}
}

// Start schedules the job and stops the scheduler when ctx is cancelled.
// A disabled job is not scheduled but can still be triggered manually.
func (s *SyncService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()

	if !s.config.Enabled {
		logrus.WithField("job", s.config.Name).Info("scheduler: job disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.tryAcquire() {
			logrus.WithField("job", s.config.Name).Info("scheduler: job already running, skipping tick")
			return
		}
		s.execute()
	})
	if err != nil {
		return fmt.Errorf("scheduler: scheduling %s: %w", s.config.Name, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", s.config.Name).Info("scheduler: stopping")
		s.scheduler.Stop()
	}()

	logrus.WithFields(logrus.Fields{
		"job":  s.config.Name,
		"cron": s.config.CronSchedule,
	}).Info("scheduler: started")

	return nil
}

// TriggerManualSync runs the job in the background. It returns
// ErrJobRunning when a run is already in progress.
func (s *SyncService) TriggerManualSync() error {
	if !s.tryAcquire() {
		logrus.WithField("job", s.config.Name).Info("scheduler: job already running, ignoring manual trigger")
		return ErrJobRunning
	}

	logrus.WithField("job", s.config.Name).Info("scheduler: manual run requested")
	go s.execute()
	return nil
}

// RunNow runs the job synchronously, for the CLI.
func (s *SyncService) RunNow() error {
	if !s.tryAcquire() {
		return ErrJobRunning
	}
	return s.execute()
}

func (s *SyncService) tryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = s.clock.Now()
	return true
}

// execute must only be called after a successful tryAcquire.
func (s *SyncService) execute() (err error) {
	s.mu.Lock()
	parent := s.baseCtx
	started := s.lastStartedAt
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(parent, jobTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scheduler: %s panicked: %v", s.config.Name, r)
		}
		s.finish(started, err)
	}()

	logrus.WithField("job", s.config.Name).Info("scheduler: run started")
	return s.job(ctx)
}

func (s *SyncService) finish(started time.Time, err error) {
	now := s.clock.Now()

	s.mu.Lock()
	s.running = false
	s.runs++
	s.lastCompletedAt = now
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.mu.Unlock()

	s.metrics.JobRun(s.config.Name, err)

	fields := logrus.Fields{
		"job":      s.config.Name,
		"duration": now.Sub(started).String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		logrus.WithFields(fields).Error("scheduler: run failed")
		return
	}
	logrus.WithFields(fields).Info("scheduler: run completed")
}

func (s *SyncService) Name() string {
	return s.config.Name
}

func (s *SyncService) GetStatus() JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := JobStatus{
		Name:         s.config.Name,
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.running,
		Runs:         s.runs,
		LastError:    s.lastError,
	}
	if !s.lastStartedAt.IsZero() {
		started := s.lastStartedAt
		status.LastStartedAt = &started
	}
	if !s.lastCompletedAt.IsZero() {
		completed := s.lastCompletedAt
		status.LastCompletedAt = &completed
	}
	return status
}
