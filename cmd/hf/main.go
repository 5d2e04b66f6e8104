package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"
	otelapi "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Inference API
	HuggingFace `embed:"" help:"Hugging Face configuration"`

	// Context
	ctx    context.Context
	tracer trace.Tracer
}

type HuggingFace struct {
	ApiKey   string        `name:"api-key" env:"HF_API_KEY" help:"Hugging Face API Key"`
	Endpoint string        `name:"endpoint" env:"HF_ENDPOINT" help:"Inference API endpoint" optional:""`
	Timeout  time.Duration `name:"timeout" help:"Request timeout" optional:""`
}

type CLI struct {
	Globals

	// Commands
	Complete  CompleteCmd  `cmd:"" help:"Continue a text prompt (gpt2)"`
	Fill      FillCmd      `cmd:"" help:"Fill the [MASK] in a text (bert-base-uncased)"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize an article (facebook/bart-large-cnn)"`
	Table     TableCmd     `cmd:"" help:"Answer a question about a table (google/tapas-base-finetuned-wtq)"`
	Sentiment SentimentCmd `cmd:"" help:"Classify the sentiment of a text (distilbert-base-uncased-finetuned-sst-2-english)"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Hugging Face inference API command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Tracer from the global provider, which is a no-op unless configured
	cli.Globals.tracer = otelapi.Tracer(execName())

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
