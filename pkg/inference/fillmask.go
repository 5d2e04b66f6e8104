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

type inputsRequest struct {
	Inputs string `json:"inputs"`
}

type fillMaskResponse struct {
	Score    float64 `json:"score"`
	Token    int     `json:"token"`
	TokenStr string  `json:"token_str"`
	Sequence string  `json:"sequence"`
}

var _ huggingface.MaskFiller = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// FillMask returns the candidate tokens for the [MASK] marker in the text,
// in the order returned. A response which is not a list returns no tokens.
func (c *Client) FillMask(ctx context.Context, text string) ([]string, error) {
	raw, err := c.Complete(ctx, schema.BERT, inputsRequest{Inputs: text})
	if err != nil {
		return nil, err
	}

	elems := elements(raw)
	result := make([]string, 0, len(elems))
	for _, elem := range elems {
		// Elements which do not decode keep their position with an empty token
		var candidate fillMaskResponse
		_ = json.Unmarshal(elem, &candidate)
		result = append(result, candidate.TokenStr)
	}
	return result, nil
}
