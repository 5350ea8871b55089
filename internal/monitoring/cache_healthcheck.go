package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

const HEALTHCHECK_INTERVAL = 15 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// MonitorScoreCache pings the cache backend on every tick and records the
// outcome in healthy until ctx is done.
func MonitorScoreCache(ctx context.Context, pinger Pinger, healthy *atomic.Bool, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := pinger.Ping(ctx)
			wasHealthy := healthy.Swap(err == nil)
			if err != nil && wasHealthy {
				slog.Warn("[HealthCheck] Score cache is unhealthy",
					slog.String("error", err.Error()))
			}
			if err == nil && !wasHealthy {
				slog.Info("[HealthCheck] Score cache recovered")
			}
		}
	}
}
