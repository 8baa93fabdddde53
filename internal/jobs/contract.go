package jobs

import (
	"context"
	"time"
)

type HoldRepository interface {
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

type Metrics interface {
	AddHoldsExpired(n int64)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
