package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type SummarizeCmd struct {
	Text string `arg:"" help:"English article, or @file to read it from a file"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *SummarizeCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	text, err := readArg(cmd.Text)
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "SummarizeCommand",
		attribute.Int("text.length", len(text)),
	)
	defer func() { endSpan(err) }()

	summary, err := client.Summarize(parent, text)
	if err != nil {
		return err
	}

	fmt.Println(summary)
	return nil
}
