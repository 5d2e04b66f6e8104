package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-huggingface/pkg/schema"
	uitable "github.com/mutablelogic/go-huggingface/pkg/ui/table"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type FillCmd struct {
	Text string `arg:"" help:"English text containing a [MASK] marker"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *FillCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "FillCommand",
		attribute.String("text", cmd.Text),
	)
	defer func() { endSpan(err) }()

	tokens, err := client.FillMask(parent, cmd.Text)
	if err != nil {
		return err
	}

	if ctx.Debug {
		fmt.Println(schema.Stringify(tokens))
	} else if len(tokens) > 0 {
		fmt.Println(uitable.Render(schema.TokenTable(tokens)))
	} else {
		fmt.Println("No results")
	}
	return nil
}
