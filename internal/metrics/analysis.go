package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"
)

type AnalysisMetrics struct {
	CommentsLoaded    prometheus.Gauge
	DatasetDegraded   prometheus.Gauge
	LastSentiment     prometheus.Gauge
	CacheLookups      *prometheus.CounterVec
	CacheBreakerState prometheus.Gauge
}

func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	m := &AnalysisMetrics{
		CommentsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "comments_loaded",
			Help:      "Number of comments in the loaded comment set.",
		}),
		DatasetDegraded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_degraded",
			Help:      "1 when placeholder comments are served because loading failed.",
		}),
		LastSentiment: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_sentiment_percentage",
			Help:      "Sentiment percentage computed by the most recent analysis.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "score_cache",
			Name:      "lookups_total",
			Help:      "Score cache lookups by result.",
		}, []string{"result"}),
		CacheBreakerState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "score_cache",
			Name:      "breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open).",
		}),
	}

	reg.MustRegister(m.CommentsLoaded, m.DatasetDegraded, m.LastSentiment, m.CacheLookups, m.CacheBreakerState)
	return m
}

func (m *AnalysisMetrics) RecordLoad(count int, degraded bool) {
	m.CommentsLoaded.Set(float64(count))
	if degraded {
		m.DatasetDegraded.Set(1)
	} else {
		m.DatasetDegraded.Set(0)
	}
}

func (m *AnalysisMetrics) RecordSentiment(pct float64) {
	m.LastSentiment.Set(pct)
}

func (m *AnalysisMetrics) CacheHit() {
	m.CacheLookups.WithLabelValues("hit").Inc()
}

func (m *AnalysisMetrics) CacheMiss() {
	m.CacheLookups.WithLabelValues("miss").Inc()
}

func (m *AnalysisMetrics) BreakerStateChanged(state gobreaker.State) {
	m.CacheBreakerState.Set(stateToFloat(state))
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
