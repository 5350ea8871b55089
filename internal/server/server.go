package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spacesedan/commentpulse/internal/loader"
	"github.com/spacesedan/commentpulse/internal/metrics"
	"github.com/spacesedan/commentpulse/internal/sentiment"
)

type Server struct {
	echo      *echo.Echo
	port      string
	dataset   loader.Result
	analyzer  *sentiment.Analyzer
	startTime time.Time

	registry        *prometheus.Registry
	analysisMetrics *metrics.AnalysisMetrics
	// nil when the score cache is disabled
	cacheHealthy *atomic.Bool
}

type Option func(*Server)

// WithCacheHealth exposes the monitored score cache state on /health/ready.
func WithCacheHealth(healthy *atomic.Bool) Option {
	return func(s *Server) {
		s.cacheHealthy = healthy
	}
}

// NewServer builds the HTTP surface around an already loaded dataset. The
// dataset is never reloaded or mutated, so handlers read it without locking.
func NewServer(port string, dataset loader.Result, analyzer *sentiment.Analyzer, reg *prometheus.Registry, analysisMetrics *metrics.AnalysisMetrics, opts ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpMetrics := metrics.NewHTTPMetrics(reg)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(httpMetrics.Middleware())

	srv := &Server{
		echo:            e,
		port:            port,
		dataset:         dataset,
		analyzer:        analyzer,
		startTime:       time.Now(),
		registry:        reg,
		analysisMetrics: analysisMetrics,
	}
	for _, opt := range opts {
		opt(srv)
	}

	analysisMetrics.RecordLoad(dataset.Comments.Len(), dataset.Degraded())

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("[Server] Starting server",
		slog.String("port", s.port),
		slog.String("source", s.dataset.Source),
		slog.Int("comments", s.dataset.Comments.Len()),
		slog.Bool("degraded", s.dataset.Degraded()))
	return s.echo.Start(fmt.Sprintf(":%s", s.port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "[Server] Request failed", attrs...)
				return nil
			}
			slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "[Server] Request", attrs...)
			return nil
		},
	})
}
