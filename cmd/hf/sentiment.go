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

type SentimentCmd struct {
	Text string `arg:"" help:"English text to classify"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *SentimentCmd) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "SentimentCommand",
		attribute.Int("text.length", len(cmd.Text)),
	)
	defer func() { endSpan(err) }()

	sentiment, err := client.Sentiment(parent, cmd.Text)
	if err != nil {
		return err
	}

	if ctx.Debug {
		fmt.Println(sentiment)
	} else {
		fmt.Println(uitable.Render(schema.SentimentTable(sentiment)))
		fmt.Println(sentiment.Result)
	}
	return nil
}
