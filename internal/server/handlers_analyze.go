package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spacesedan/commentpulse/internal/report"
)

// handleAnalyze scores the loaded comment set on every call. Query string and
// body are ignored and there is no error response: a degraded dataset is
// analyzed like any other.
func (s *Server) handleAnalyze(c echo.Context) error {
	summary := s.analyzer.Analyze(c.Request().Context(), s.dataset.Comments)
	s.analysisMetrics.RecordSentiment(summary.Sentiment)

	return c.JSON(http.StatusOK, report.Build(summary))
}
