package jobs

import (
	"context"
	"time"
)

// expireTimeout ограничение на один прогон очистки
const expireTimeout = 30 * time.Second

// HoldExpirer помечает истекшие холды статусом expired
// Проверка доступности и без этой задачи игнорирует истекшие холды, задача только чистит данные
type HoldExpirer struct {
	holdRepo     HoldRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

func NewHoldExpirer(holdRepo HoldRepository, metrics Metrics, logger Logger) *HoldExpirer {
	return &HoldExpirer{
		holdRepo:     holdRepo,
		metrics:      metrics,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider устанавливает кастомный провайдер времени (для тестирования)
func (e *HoldExpirer) WithTimeProvider(tp TimeProvider) *HoldExpirer {
	e.timeProvider = tp
	return e
}

// Run выполняет один прогон очистки
func (e *HoldExpirer) Run(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, expireTimeout)
	defer cancel()

	n, err := e.holdRepo.ExpireStale(ctx, e.timeProvider.Now())
	if err != nil {
		e.logger.Error("ExpireHolds: failed to expire stale holds: %v", err)
		return 0, err
	}

	e.metrics.AddHoldsExpired(n)
	if n > 0 {
		e.logger.Info("ExpireHolds: marked %d holds as expired", n)
	}
	return n, nil
}
