package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler запускает фоновые задачи по cron-расписанию с секундами
type Scheduler struct {
	cron   *cron.Cron
	logger Logger
}

func NewScheduler(logger Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// RegisterHoldExpirer добавляет очистку холдов по расписанию
func (s *Scheduler) RegisterHoldExpirer(schedule string, expirer *HoldExpirer) error {
	_, err := s.cron.AddFunc(schedule, func() {
		_, _ = expirer.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("register hold expirer with schedule %q: %w", schedule, err)
	}
	s.logger.Info("Scheduler: hold expirer registered, schedule=%q", schedule)
	return nil
}

func (s *Scheduler) Start() {
	s.logger.Info("Scheduler: starting %d jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler: stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}
