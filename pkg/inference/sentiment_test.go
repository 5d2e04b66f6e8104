package inference_test

import (
	"context"
	"net/http"
	"testing"

	// Packages
	inference "github.com/mutablelogic/go-huggingface/pkg/inference"
	schema "github.com/mutablelogic/go-huggingface/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// UNIT TESTS

func Test_sentiment_001(t *testing.T) {
	// The request carries only the inputs
	assert := assert.New(t)
	srv, req := newTestServer(t, http.StatusOK, `[[{"label":"NEGATIVE","score":0.9},{"label":"POSITIVE","score":0.1}]]`)
	c := newTestClient(t, srv, "test-key")

	sentiment, err := c.Sentiment(context.TODO(), "That is a really pretty hat")
	assert.NoError(err)
	assert.Equal(schema.Sentiment{Negative: 0.9, Positive: 0.1, Result: schema.Negative}, sentiment)
	assert.Equal("/models/distilbert-base-uncased-finetuned-sst-2-english", req.Path)
	assert.JSONEq(`{"inputs":"That is a really pretty hat"}`, req.Body)
}

func Test_sentiment_002(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		expect schema.Sentiment
	}{
		{
			name:   "negative",
			body:   `[[{"label":"NEGATIVE","score":0.9},{"label":"POSITIVE","score":0.1}]]`,
			expect: schema.Sentiment{Negative: 0.9, Positive: 0.1, Result: schema.Negative},
		},
		{
			name:   "positive",
			body:   `[[{"label":"NEGATIVE","score":0.1},{"label":"POSITIVE","score":0.9}]]`,
			expect: schema.Sentiment{Negative: 0.1, Positive: 0.9, Result: schema.Positive},
		},
		{
			name:   "positive listed first",
			body:   `[[{"label":"POSITIVE","score":0.7},{"label":"NEGATIVE","score":0.3}]]`,
			expect: schema.Sentiment{Negative: 0.3, Positive: 0.7, Result: schema.Positive},
		},
		{
			name:   "equal scores",
			body:   `[[{"label":"NEGATIVE","score":0.5},{"label":"POSITIVE","score":0.5}]]`,
			expect: schema.Sentiment{Negative: 0.5, Positive: 0.5, Result: schema.Neutral},
		},
		{
			name:   "negative absent",
			body:   `[[{"label":"POSITIVE","score":0.2}]]`,
			expect: schema.Sentiment{Negative: 0, Positive: 0.2, Result: schema.Positive},
		},
		{
			name:   "first label wins",
			body:   `[[{"label":"NEGATIVE","score":0.6},{"label":"NEGATIVE","score":0.1},{"label":"POSITIVE","score":0.4}]]`,
			expect: schema.Sentiment{Negative: 0.6, Positive: 0.4, Result: schema.Negative},
		},
		{
			name:   "only first list is read",
			body:   `[[{"label":"POSITIVE","score":0.1}],[{"label":"NEGATIVE","score":0.9}]]`,
			expect: schema.Sentiment{Negative: 0, Positive: 0.1, Result: schema.Positive},
		},
		{
			name:   "empty list",
			body:   `[]`,
			expect: schema.Sentiment{Result: schema.Neutral},
		},
		{
			name:   "flat list",
			body:   `[{"label":"NEGATIVE","score":0.9}]`,
			expect: schema.Sentiment{Result: schema.Neutral},
		},
		{
			name:   "object",
			body:   `{"error":"loading"}`,
			expect: schema.Sentiment{Result: schema.Neutral},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, http.StatusOK, tt.body)
			c := newTestClient(t, srv, "test-key")

			sentiment, err := c.Sentiment(context.TODO(), "hello")
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, sentiment)
		})
	}
}

///////////////////////////////////////////////////////////////////////////////
// INTEGRATION TESTS

func Test_sentiment_003(t *testing.T) {
	if apiKey == "" {
		t.Skip("HF_API_KEY not set, skipping")
	}
	assert := assert.New(t)
	c, err := inference.New(apiKey)
	assert.NoError(err)

	sentiment, err := c.Sentiment(context.TODO(), "That is a really pretty hat")
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.Equal(schema.Positive, sentiment.Result)
	t.Log(sentiment)
}
