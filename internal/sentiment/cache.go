package sentiment

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

const SCORE_KEY_PREFIX = "commentpulse:score:"

// ScoreCache memoizes compound scores by text. Implementations must never
// fail a request: errors are reported as misses.
type ScoreCache interface {
	Get(ctx context.Context, text string) (float64, bool)
	Set(ctx context.Context, text string, score float64)
}

type NopCache struct{}

func (NopCache) Get(context.Context, string) (float64, bool) { return 0, false }
func (NopCache) Set(context.Context, string, float64) {}

// ScoreBackend is the remote store behind BreakerCache.
type ScoreBackend interface {
	GetScore(ctx context.Context, key string) (float64, bool, error)
	SetScore(ctx context.Context, key string, score float64, ttl time.Duration) error
}

// CacheObserver receives cache outcomes; the metrics package implements it.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
	BreakerStateChanged(state gobreaker.State)
}

type nopObserver struct{}

func (nopObserver) CacheHit() {}
func (nopObserver) CacheMiss() {}
func (nopObserver) BreakerStateChanged(gobreaker.State) {}

type BreakerCache struct {
	backend  ScoreBackend
	cb       *gobreaker.CircuitBreaker
	ttl      time.Duration
	observer CacheObserver
}

type BreakerSettings struct {
	// ConsecutiveFailures trips the breaker open.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

var DefaultBreakerSettings = BreakerSettings{
	ConsecutiveFailures: 5,
	OpenTimeout:         30 * time.Second,
}

func NewBreakerCache(backend ScoreBackend, ttl time.Duration, settings BreakerSettings, observer CacheObserver) *BreakerCache {
	if observer == nil {
		observer = nopObserver{}
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "score-cache",
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("[ScoreCache] Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			observer.BreakerStateChanged(to)
		},
	})

	return &BreakerCache{
		backend:  backend,
		cb:       cb,
		ttl:      ttl,
		observer: observer,
	}
}

func (c *BreakerCache) State() gobreaker.State {
	return c.cb.State()
}

func (c *BreakerCache) Get(ctx context.Context, text string) (float64, bool) {
	type lookup struct {
		score float64
		found bool
	}

	res, err := c.cb.Execute(func() (interface{}, error) {
		score, found, err := c.backend.GetScore(ctx, ScoreKey(text))
		return lookup{score: score, found: found}, err
	})
	if err != nil {
		c.logFailure("get", err)
		c.observer.CacheMiss()
		return 0, false
	}

	l := res.(lookup)
	if !l.found {
		c.observer.CacheMiss()
		return 0, false
	}

	c.observer.CacheHit()
	return l.score, true
}

func (c *BreakerCache) Set(ctx context.Context, text string, score float64) {
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.backend.SetScore(ctx, ScoreKey(text), score, c.ttl)
	})
	if err != nil {
		c.logFailure("set", err)
	}
}

func (c *BreakerCache) logFailure(op string, err error) {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		slog.Debug("[ScoreCache] Skipped while breaker is open",
			slog.String("op", op))
		return
	}
	slog.Warn("[ScoreCache] Backend call failed",
		slog.String("op", op),
		slog.String("error", err.Error()))
}

// ScoreKey hashes the text so arbitrary comment bodies make bounded keys.
func ScoreKey(text string) string {
	sum := sha1.Sum([]byte(text))
	return SCORE_KEY_PREFIX + hex.EncodeToString(sum[:])
}
