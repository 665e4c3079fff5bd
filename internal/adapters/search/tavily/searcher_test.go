package tavily

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMapsResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Bearer tvly-test", r.Header.Get("Authorization"))

		var req searchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "go generics", req.Query)
		assert.Equal(t, 10, req.MaxResults)

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"query": "go generics", "results": [
			{"url": "https://go.dev/blog/intro-generics", "title": "An Introduction To Generics", "content": "Go 1.18 adds generics", "score": 0.9},
			{"url": "", "title": "dropped", "content": "no url"},
			{"url": "https://example.com/b", "title": "B", "content": "b"}
		]}`)
	}))
	t.Cleanup(server.Close)

	searcher := NewSearcher(server.URL+"/", "tvly-test")
	docs, err := searcher.Search(context.Background(), "  go generics ")
	require.NoError(t, err)

	assert.Equal(t, []domain.SourceDocument{
		{URL: "https://go.dev/blog/intro-generics", Title: "An Introduction To Generics", Content: "Go 1.18 adds generics"},
		{URL: "https://example.com/b", Title: "B", Content: "b"},
	}, docs)
}

func TestSearchCapsResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		results := make([]string, 0, 15)
		for i := range 15 {
			results = append(results, fmt.Sprintf(`{"url": "https://r%d.example", "title": "r", "content": "c"}`, i))
		}
		_, _ = fmt.Fprintf(w, `{"results": [%s]}`, strings.Join(results, ","))
	}))
	t.Cleanup(server.Close)

	docs, err := NewSearcher(server.URL, "k").Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, docs, DefaultMaxResults)
}

func TestSearchReportsStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail": {"error": "Unauthorized: missing or invalid API key."}}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	_, err := NewSearcher(server.URL, "bad").Search(context.Background(), "q")
	require.Error(t, err)
	assert.ErrorContains(t, err, "search returned status 401")
	assert.ErrorContains(t, err, "invalid API key")
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	t.Parallel()

	_, err := NewSearcher("http://127.0.0.1:1", "k").Search(context.Background(), " ")
	require.Error(t, err)
}
