package inference

import (
	"context"
	"encoding/json"

	// Packages
	huggingface "github.com/mutablelogic/go-huggingface"
	schema "github.com/mutablelogic/go-huggingface/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type sentimentScore struct {
	Label schema.SentimentLabel `json:"label"`
	Score float64               `json:"score"`
}

var _ huggingface.SentimentAnalyzer = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Sentiment classifies an English text. The scores are read from the first
// list of labels in the response, and a label which is absent scores zero.
func (c *Client) Sentiment(ctx context.Context, text string) (schema.Sentiment, error) {
	raw, err := c.Complete(ctx, schema.DistilBERT, inputsRequest{Inputs: text})
	if err != nil {
		return schema.Sentiment{}, err
	}

	var labels []json.RawMessage
	first(raw, &labels)
	return schema.NewSentiment(score(labels, schema.Negative), score(labels, schema.Positive)), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// score returns the score of the first entry with the label, or zero
func score(labels []json.RawMessage, label schema.SentimentLabel) float64 {
	for _, elem := range labels {
		var entry sentimentScore
		_ = json.Unmarshal(elem, &entry)
		if entry.Label == label {
			return entry.Score
		}
	}
	return 0
}
