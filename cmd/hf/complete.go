package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CompleteCmd struct {
	Prompt string `arg:"" help:"English text prompt"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *CompleteCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CompleteCommand",
		attribute.Int("prompt.length", len(cmd.Prompt)),
	)
	defer func() { endSpan(err) }()

	text, err := client.TextCompletion(parent, cmd.Prompt)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
