/*
inference implements an API client for the hosted Hugging Face inference API.
https://huggingface.co/inference-api
*/
package inference

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-client"
	huggingface "github.com/mutablelogic/go-huggingface"
	version "github.com/mutablelogic/go-huggingface/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

var _ huggingface.Completer = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api-inference.huggingface.co/models"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new inference API client which authenticates with the given
// API key as a bearer token. Options are applied after the defaults, so the
// endpoint can be overridden.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: apiKey}),
		client.OptUserAgent(version.UserAgent()),
	}, opts...)
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Complete posts the body as JSON to the named model and returns the raw
// response. Any transport error, including a non-success status or a body
// which is not JSON, is returned unchanged.
func (c *Client) Complete(ctx context.Context, model string, body any) (json.RawMessage, error) {
	payload, err := client.NewJSONRequest(body)
	if err != nil {
		return nil, err
	}

	var response json.RawMessage
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath(model)); err != nil {
		return nil, err
	}

	return response, nil
}
