package inference

import (
	"context"

	// Packages
	huggingface "github.com/mutablelogic/go-huggingface"
	schema "github.com/mutablelogic/go-huggingface/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type textParameters struct {
	Temperature       float64 `json:"temperature"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
	ReturnFullText    bool    `json:"return_full_text"`
}

type textRequest struct {
	Inputs     string         `json:"inputs"`
	Parameters textParameters `json:"parameters"`
}

type textResponse struct {
	GeneratedText string `json:"generated_text"`
}

var _ huggingface.TextCompleter = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// TextCompletion returns a short continuation of an English prompt, without
// the prompt itself. An empty response returns an empty string.
func (c *Client) TextCompletion(ctx context.Context, prompt string) (string, error) {
	raw, err := c.Complete(ctx, schema.GPT2, textRequest{
		Inputs: prompt,
		Parameters: textParameters{
			Temperature:       schema.DefaultTemperature,
			MaxNewTokens:      schema.DefaultMaxNewTokens,
			RepetitionPenalty: schema.DefaultRepetitionPenalty,
			ReturnFullText:    false,
		},
	})
	if err != nil {
		return "", err
	}

	var response textResponse
	if !first(raw, &response) {
		return "", nil
	}
	return response.GeneratedText, nil
}
