package sentiment

import (
	"context"
	"log/slog"
	"math"
)

const (
	POSITIVE_THRESHOLD = 0.05

	ENGAGEMENT_SCALE  = 0.95
	ENGAGEMENT_OFFSET = 5.0
	ENGAGEMENT_CAP    = 99.9
)

type Summary struct {
	Total      int
	Positive   int
	Sentiment  float64
	Engagement float64
}

type Analyzer struct {
	scorer Scorer
	cache  ScoreCache
}

// NewAnalyzer wires a scorer with an optional cache; nil means no caching.
func NewAnalyzer(scorer Scorer, cache ScoreCache) *Analyzer {
	if cache == nil {
		cache = NopCache{}
	}
	return &Analyzer{scorer: scorer, cache: cache}
}

// Analyze counts comments whose compound score reaches POSITIVE_THRESHOLD.
// An empty input yields a zero Summary.
func (a *Analyzer) Analyze(ctx context.Context, comments []string) Summary {
	total := len(comments)
	if total == 0 {
		return Summary{}
	}

	positive := 0
	for _, comment := range comments {
		if a.score(ctx, comment) >= POSITIVE_THRESHOLD {
			positive++
		}
	}

	sentiment := float64(positive) / float64(total) * 100

	slog.Debug("[Analyzer] Scored comments",
		slog.Int("total", total),
		slog.Int("positive", positive))

	return Summary{
		Total:      total,
		Positive:   positive,
		Sentiment:  sentiment,
		Engagement: Engagement(sentiment),
	}
}

func (a *Analyzer) score(ctx context.Context, text string) float64 {
	if score, ok := a.cache.Get(ctx, text); ok {
		return score
	}

	score := a.scorer.Compound(text)
	a.cache.Set(ctx, text, score)
	return score
}

// Engagement is a display-only figure derived linearly from the sentiment
// percentage and capped just below 100.
func Engagement(sentiment float64) float64 {
	return math.Min(sentiment*ENGAGEMENT_SCALE+ENGAGEMENT_OFFSET, ENGAGEMENT_CAP)
}
