package report

import (
	"fmt"
	"strconv"

	"github.com/spacesedan/commentpulse/internal/models"
	"github.com/spacesedan/commentpulse/internal/sentiment"
)

const (
	POSITIVE_RECEPTION_MIN = 70.0
	MIXED_RECEPTION_MIN    = 40.0

	// Fixed display counters; they are not derived from the dataset.
	LIKES = 1500
	VIEWS = 25000
)

type Reception struct {
	Type  models.ReceptionType
	Title string
	Icon  string
}

var (
	positiveReception = Reception{models.ReceptionPositive, "Highly Positive Reception", "fa-smile-beam"}
	mixedReception    = Reception{models.ReceptionMixed, "Mixed Audience Opinion", "fa-meh"}
	negativeReception = Reception{models.ReceptionNegative, "Negative Reception", "fa-frown"}
)

// Classify buckets an unrounded sentiment percentage.
func Classify(sentimentPct float64) Reception {
	switch {
	case sentimentPct >= POSITIVE_RECEPTION_MIN:
		return positiveReception
	case sentimentPct >= MIXED_RECEPTION_MIN:
		return mixedReception
	default:
		return negativeReception
	}
}

func Build(summary sentiment.Summary) models.AnalysisResult {
	reception := Classify(summary.Sentiment)

	return models.AnalysisResult{
		Type:        reception.Type,
		Icon:        reception.Icon,
		Title:       reception.Title,
		Description: fmt.Sprintf("Analysis based on %d sample comments.", summary.Total),
		Sentiment:   round1(summary.Sentiment),
		Engagement:  round1(summary.Engagement),
		Likes:       LIKES,
		Views:       VIEWS,
	}
}

// round1 rounds the exact binary value to one decimal, ties to even, so
// 76.25 becomes 76.2.
func round1(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}
