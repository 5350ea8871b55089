package report

import (
	"encoding/json"
	"testing"

	"github.com/spacesedan/commentpulse/internal/models"
	"github.com/spacesedan/commentpulse/internal/sentiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want models.ReceptionType
	}{
		{100, models.ReceptionPositive},
		{70.0, models.ReceptionPositive},
		{69.9, models.ReceptionMixed},
		{40.0, models.ReceptionMixed},
		{39.9, models.ReceptionNegative},
		{0, models.ReceptionNegative},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.pct).Type, "sentiment %.1f", tc.pct)
	}
}

func TestClassify_TitlesAndIcons(t *testing.T) {
	assert.Equal(t, Reception{models.ReceptionPositive, "Highly Positive Reception", "fa-smile-beam"}, Classify(85))
	assert.Equal(t, Reception{models.ReceptionMixed, "Mixed Audience Opinion", "fa-meh"}, Classify(55))
	assert.Equal(t, Reception{models.ReceptionNegative, "Negative Reception", "fa-frown"}, Classify(10))
}

func TestBuild_TwoOfThree(t *testing.T) {
	summary := sentiment.Summary{
		Total:      3,
		Positive:   2,
		Sentiment:  200.0 / 3,
		Engagement: sentiment.Engagement(200.0 / 3),
	}

	result := Build(summary)

	assert.Equal(t, models.ReceptionMixed, result.Type)
	assert.Equal(t, 66.7, result.Sentiment)
	assert.Equal(t, 68.3, result.Engagement)
	assert.Equal(t, "Analysis based on 3 sample comments.", result.Description)
	assert.Equal(t, LIKES, result.Likes)
	assert.Equal(t, VIEWS, result.Views)
}

func TestBuild_ClassifiesBeforeRounding(t *testing.T) {
	// 69.96 rounds to 70.0 for display but is still below the positive bucket.
	result := Build(sentiment.Summary{Total: 10000, Sentiment: 69.96, Engagement: sentiment.Engagement(69.96)})

	assert.Equal(t, models.ReceptionMixed, result.Type)
	assert.Equal(t, 70.0, result.Sentiment)
}

func TestBuild_EmptySummary(t *testing.T) {
	result := Build(sentiment.Summary{})

	assert.Equal(t, models.ReceptionNegative, result.Type)
	assert.Equal(t, 0.0, result.Sentiment)
	assert.Equal(t, 0.0, result.Engagement)
	assert.Equal(t, "Analysis based on 0 sample comments.", result.Description)
}

func TestBuild_JSONShape(t *testing.T) {
	raw, err := json.Marshal(Build(sentiment.Summary{Total: 4, Positive: 4, Sentiment: 100, Engagement: 99.9}))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "positive",
		"icon": "fa-smile-beam",
		"title": "Highly Positive Reception",
		"description": "Analysis based on 4 sample comments.",
		"sentiment": 100,
		"engagement": 99.9,
		"likes": 1500,
		"views": 25000
	}`, string(raw))
}

func TestBuild_RoundsTiesToEven(t *testing.T) {
	cases := []struct {
		positive, total int
		sentiment       float64
		engagement      float64
	}{
		{3, 4, 75, 76.2},
		{1, 16, 6.2, 10.9},
		{5, 16, 31.2, 34.7},
		{1, 8, 12.5, 16.9},
	}

	for _, tc := range cases {
		pct := float64(tc.positive) / float64(tc.total) * 100
		result := Build(sentiment.Summary{
			Total:      tc.total,
			Positive:   tc.positive,
			Sentiment:  pct,
			Engagement: sentiment.Engagement(pct),
		})

		assert.Equal(t, tc.sentiment, result.Sentiment, "%d/%d sentiment", tc.positive, tc.total)
		assert.Equal(t, tc.engagement, result.Engagement, "%d/%d engagement", tc.positive, tc.total)
	}
}
