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

type tableInputs struct {
	Query string       `json:"query"`
	Table schema.Table `json:"table"`
}

type tableRequest struct {
	Inputs tableInputs `json:"inputs"`
}

var _ huggingface.TableAnswerer = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// TableAnswer answers a question about a table, where each column name maps
// to its cells. The response fields are returned as-is; fields which are
// absent or of the wrong type are left empty.
func (c *Client) TableAnswer(ctx context.Context, query string, table schema.Table) (schema.TableAnswer, error) {
	raw, err := c.Complete(ctx, schema.TAPAS, tableRequest{
		Inputs: tableInputs{Query: query, Table: table},
	})
	if err != nil {
		return schema.TableAnswer{}, err
	}

	var response schema.TableAnswer
	_ = json.Unmarshal(raw, &response)
	return response, nil
}
