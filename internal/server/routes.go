package server

import (
	"github.com/labstack/echo/v4"
	"github.com/spacesedan/commentpulse/internal/metrics"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler(s.registry)))

	s.echo.GET("/analyze", s.handleAnalyze)
}
