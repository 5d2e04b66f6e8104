package main

import (
	"os"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	huggingface "github.com/mutablelogic/go-huggingface"
	inference "github.com/mutablelogic/go-huggingface/pkg/inference"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns an inference client configured from the global flags
func (g *Globals) Client() (*inference.Client, error) {
	if g.ApiKey == "" {
		return nil, huggingface.ErrBadParameter.With("missing API key, set HF_API_KEY or --api-key")
	}
	return inference.New(g.ApiKey, g.clientOpts()...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	if endpoint := strings.TrimSpace(g.Endpoint); endpoint != "" {
		opts = append(opts, client.OptEndpoint(endpoint))
	}
	return opts
}
