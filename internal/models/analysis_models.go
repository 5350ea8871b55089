package models

type ReceptionType string

const (
	ReceptionPositive ReceptionType = "positive"
	ReceptionMixed    ReceptionType = "mixed"
	ReceptionNegative ReceptionType = "negative"
)

type AnalysisResult struct {
	Type        ReceptionType `json:"type"`
	Icon        string        `json:"icon"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Sentiment   float64       `json:"sentiment"`
	Engagement  float64       `json:"engagement"`
	Likes       int           `json:"likes"`
	Views       int           `json:"views"`
}
