package report

import (
	"fmt"

	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/domain"
	"github.com/GoSim-25-26J-441/project-tracker/internal/tracker/state"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Summary is the project count per status at one instant.
type Summary struct {
	Active   int
	Finished int
}

func (s Summary) Total() int { return s.Active + s.Finished }

// Summarize counts the projects in a snapshot.
func Summarize(projects []domain.Project) Summary {
	var s Summary
	for _, p := range projects {
		switch p.Status {
		case domain.StatusActive:
			s.Active++
		case domain.StatusFinished:
			s.Finished++
		}
	}
	return s
}

// Scheduler periodically logs a board summary.
type Scheduler struct {
	store *state.Store
	log   *zap.Logger
	cron  *cron.Cron
}

func NewScheduler(store *state.Store, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		store: store,
		log:   log,
		cron:  cron.New(cron.WithSeconds()),
	}
}

// Start registers the report job on spec (six fields, seconds first) and
// starts the cron runner.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return fmt.Errorf("failed to create report job: %w", err)
	}

	s.log.Info("report scheduler started", zap.String("schedule", spec))
	s.cron.Start()
	return nil
}

// Stop halts the runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Run logs one summary immediately.
func (s *Scheduler) Run() {
	sum := Summarize(s.store.Snapshot())
	s.log.Info("board summary",
		zap.Int("active", sum.Active),
		zap.Int("finished", sum.Finished),
		zap.Int("total", sum.Total()),
	)
}
