package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// Scorer returns a compound polarity in [-1, 1] for a single text.
type Scorer interface {
	Compound(text string) float64
}

type VaderScorer struct {
	analyzer  *govader.SentimentIntensityAnalyzer
	normalize bool
}

// NewVaderScorer builds the lexicon scorer. With normalize set, markdown is
// flattened to plain text and links are dropped before scoring.
func NewVaderScorer(normalize bool) *VaderScorer {
	return &VaderScorer{
		analyzer:  govader.NewSentimentIntensityAnalyzer(),
		normalize: normalize,
	}
}

func (v *VaderScorer) Compound(text string) float64 {
	if v.normalize {
		text = ConvertMarkdownToText(text)
	}
	return v.analyzer.PolarityScores(text).Compound
}

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(plainRenderer()))
	plainText := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return strings.Join(strings.Fields(plainText), " ")
}

// plainRenderer leaves out smartypants so apostrophes and quotes reach the
// lexicon unchanged.
func plainRenderer() blackfriday.Renderer {
	return blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
}
