package schema

import (
	"fmt"

	// Packages
	uitable "github.com/mutablelogic/go-huggingface/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type SentimentLabel string

// Sentiment holds the scores for a text classified as negative or positive
type Sentiment struct {
	Negative float64        `json:"negative"`
	Positive float64        `json:"positive"`
	Result   SentimentLabel `json:"result"`
}

// SentimentTable implements table.TableData for a sentiment result
type SentimentTable Sentiment

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Negative SentimentLabel = "NEGATIVE"
	Positive SentimentLabel = "POSITIVE"
	Neutral  SentimentLabel = "NEUTRAL"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSentiment returns a sentiment from negative and positive scores. The
// result is whichever score is strictly greater, or neutral on a tie.
func NewSentiment(negative, positive float64) Sentiment {
	result := Neutral
	switch {
	case negative > positive:
		result = Negative
	case positive > negative:
		result = Positive
	}
	return Sentiment{
		Negative: negative,
		Positive: positive,
		Result:   result,
	}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Sentiment) String() string {
	return Stringify(s)
}

///////////////////////////////////////////////////////////////////////////////
// SENTIMENT TABLE

func (t SentimentTable) Header() []string {
	return []string{"LABEL", "SCORE"}
}

func (t SentimentTable) Len() int {
	return 2
}

func (t SentimentTable) Row(i int) []any {
	label, score := Negative, t.Negative
	if i == 1 {
		label, score = Positive, t.Positive
	}
	row := []any{string(label), fmt.Sprintf("%.4f", score)}
	if label == t.Result {
		for j, v := range row {
			row[j] = uitable.Bold{Value: v}
		}
	}
	return row
}
