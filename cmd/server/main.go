package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/commentpulse/config"
	"github.com/spacesedan/commentpulse/internal/clients"
	"github.com/spacesedan/commentpulse/internal/loader"
	"github.com/spacesedan/commentpulse/internal/logging"
	"github.com/spacesedan/commentpulse/internal/metrics"
	"github.com/spacesedan/commentpulse/internal/monitoring"
	"github.com/spacesedan/commentpulse/internal/sentiment"
	"github.com/spacesedan/commentpulse/internal/server"
)

const SHUTDOWN_TIMEOUT = 10 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dataset := loadDataset(ctx, cfg)

	reg := metrics.NewRegistry()
	analysisMetrics := metrics.NewAnalysisMetrics(reg)

	var cache sentiment.ScoreCache
	var opts []server.Option
	if cfg.ScoreCacheEnabled() {
		vc, err := clients.NewValkeyClient(ctx, clients.ValkeyConfig{
			Address:  cfg.ValkeyAddress,
			Password: cfg.ValkeyPassword,
			UseTLS:   cfg.ValkeyTLS,
		})
		if err != nil {
			slog.Warn("[Main] Score cache unavailable, scoring without cache",
				slog.String("address", cfg.ValkeyAddress),
				slog.String("error", err.Error()))
		} else {
			defer vc.Close()

			cacheHealthy := &atomic.Bool{}
			cacheHealthy.Store(true)
			go monitoring.MonitorScoreCache(ctx, vc, cacheHealthy, monitoring.HEALTHCHECK_INTERVAL)

			cache = sentiment.NewBreakerCache(vc, cfg.ScoreCacheTTL, sentiment.DefaultBreakerSettings, analysisMetrics)
			opts = append(opts, server.WithCacheHealth(cacheHealthy))
		}
	}

	analyzer := sentiment.NewAnalyzer(sentiment.NewVaderScorer(cfg.NormalizeMarkdown), cache)
	srv := server.NewServer(cfg.Port, dataset, analyzer, reg, analysisMetrics, opts...)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("[Main] Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Graceful shutdown failed",
			slog.String("error", err.Error()))
	}
}

func loadDataset(ctx context.Context, cfg config.Config) loader.Result {
	switch cfg.CommentsSource {
	case config.SOURCE_DYNAMO:
		awsCfg, err := clients.LoadAWSConfig(ctx, cfg.AWSRegion)
		if err != nil {
			slog.Warn("[Main] Failed to load AWS config, serving placeholder data",
				slog.String("error", err.Error()))
			return loader.Result{
				Source:   cfg.CommentsTable,
				Comments: loader.Placeholder(err),
				Err:      err,
			}
		}
		client := clients.NewDynamoDBClient(awsCfg, cfg.AWSEndpoint)
		return loader.Load(ctx, loader.NewDynamoSource(client, cfg.CommentsTable, cfg.CommentColumn))
	default:
		if cfg.CommentsSource != config.SOURCE_CSV {
			slog.Warn("[Main] Unknown comments source, falling back to CSV",
				slog.String("source", cfg.CommentsSource))
		}
		return loader.Load(ctx, loader.NewCSVSource(cfg.CSVPath, cfg.CommentColumn))
	}
}
