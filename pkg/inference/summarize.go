package inference

import (
	"context"

	// Packages
	huggingface "github.com/mutablelogic/go-huggingface"
	schema "github.com/mutablelogic/go-huggingface/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type summaryResponse struct {
	SummaryText string `json:"summary_text"`
}

var _ huggingface.Summarizer = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Summarize returns a summary of an English article. When the response
// carries no summary, the original text is returned unchanged.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	raw, err := c.Complete(ctx, schema.BART, inputsRequest{Inputs: text})
	if err != nil {
		return "", err
	}

	var response summaryResponse
	if !first(raw, &response) || response.SummaryText == "" {
		return text, nil
	}
	return response.SummaryText, nil
}
