package schema

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Hosted model identifiers, appended to the inference endpoint
const (
	GPT2       = "gpt2"
	BERT       = "bert-base-uncased"
	BART       = "facebook/bart-large-cnn"
	TAPAS      = "google/tapas-base-finetuned-wtq"
	DistilBERT = "distilbert-base-uncased-finetuned-sst-2-english"
)

// Default parameters for text generation with GPT2
const (
	DefaultTemperature       = 1
	DefaultMaxNewTokens      = 10
	DefaultRepetitionPenalty = 50
)
