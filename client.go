package huggingface

import (
	"context"
	"encoding/json"

	// Packages
	schema "github.com/mutablelogic/go-huggingface/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Completer sends an arbitrary request body to a hosted model and returns
// the raw response
type Completer interface {
	Complete(ctx context.Context, model string, body any) (json.RawMessage, error)
}

// TextCompleter continues a text prompt
type TextCompleter interface {
	// TextCompletion returns the generated continuation of the prompt
	TextCompletion(ctx context.Context, prompt string) (string, error)
}

// MaskFiller proposes tokens for a masked word in a text
type MaskFiller interface {
	// FillMask returns candidate tokens in ranked order
	FillMask(ctx context.Context, text string) ([]string, error)
}

// Summarizer condenses an article
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// TableAnswerer answers a question about tabular data
type TableAnswerer interface {
	// TableAnswer queries a table of named columns
	TableAnswer(ctx context.Context, query string, table schema.Table) (schema.TableAnswer, error)
}

// SentimentAnalyzer classifies text as positive or negative
type SentimentAnalyzer interface {
	Sentiment(ctx context.Context, text string) (schema.Sentiment, error)
}
