package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	CACHE_DISABLED  = "disabled"
	CACHE_HEALTHY   = "healthy"
	CACHE_UNHEALTHY = "unhealthy"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

// handleReadiness always reports ready: placeholder data and an unhealthy
// cache both still serve /analyze.
func (s *Server) handleReadiness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "ready",
		"comments":    s.dataset.Comments.Len(),
		"degraded":    s.dataset.Degraded(),
		"score_cache": s.cacheStatus(),
	})
}

func (s *Server) cacheStatus() string {
	switch {
	case s.cacheHealthy == nil:
		return CACHE_DISABLED
	case s.cacheHealthy.Load():
		return CACHE_HEALTHY
	default:
		return CACHE_UNHEALTHY
	}
}
