package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(content string) string {
	encoded, _ := json.Marshal(content)
	return fmt.Sprintf(`{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4o",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": %s}}],
		"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
	}`, encoded)
}

func newTestSummarizer(t *testing.T, handler http.HandlerFunc) *Summarizer {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s, err := New(Config{APIKey: "sk-test", BaseURL: server.URL + "/", Model: "gpt-4o"}, zerolog.Nop())
	require.NoError(t, err)

	return s
}

func TestSummarizeSendsSchemaAndDecodesAnswer(t *testing.T) {
	t.Parallel()

	s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4o", body["model"])

		format := body["response_format"].(map[string]any)
		assert.Equal(t, "json_schema", format["type"])
		assert.Equal(t, "summary_result", format["json_schema"].(map[string]any)["name"])

		messages := body["messages"].([]any)
		assert.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, completionBody(`{"url": "https://example.com", "title": "Example", "tags": ["a"]}`))
	})

	summary, err := s.Summarize(context.Background(), domain.SummaryInput{
		Subject: "https://example.com",
		Kind:    domain.SubjectKindURL,
		Sources: []domain.SourceDocument{{URL: "https://example.com", Content: "text"}},
	}, domain.Profile{Name: "work", Description: "engineer"})
	require.NoError(t, err)

	assert.Equal(t, "Example", summary.Title)
	assert.Equal(t, []string{"a"}, summary.Tags)
}

func TestSummarizeSurfacesShapeErrors(t *testing.T) {
	t.Parallel()

	s := newTestSummarizer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, completionBody(`{"url": "https://example.com", "mood": "happy"}`))
	})

	_, err := s.Summarize(context.Background(), domain.SummaryInput{Subject: "https://example.com", Kind: domain.SubjectKindURL}, domain.Profile{})
	require.ErrorIs(t, err, domain.ErrInvalidSummaryShape)
}

func TestSummarizeSurfacesAPIErrors(t *testing.T) {
	t.Parallel()

	s := newTestSummarizer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error", "code": "invalid_api_key"}}`)
	})

	_, err := s.Summarize(context.Background(), domain.SummaryInput{Subject: "https://example.com", Kind: domain.SubjectKindURL}, domain.Profile{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "openai chat completion")
	assert.ErrorContains(t, err, "401")
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Model: "gpt-4o"}, zerolog.Nop())
	require.Error(t, err)
	_, err = New(Config{APIKey: "sk"}, zerolog.Nop())
	require.Error(t, err)
}
