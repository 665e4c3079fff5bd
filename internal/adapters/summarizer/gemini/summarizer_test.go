package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	return f.resp, f.err
}

func answer(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: "model", Parts: parts}}},
	}
}

func TestSummarizeJoinsTextParts(t *testing.T) {
	t.Parallel()

	fake := &fakeGenerator{resp: answer(
		&genai.Part{Text: "thinking about it", Thought: true},
		&genai.Part{Text: `{"url": "https://example.com", `},
		&genai.Part{Text: `"title": "Example"}`},
	)}
	s := newWithGenerator(fake, "gemini-2.5-flash", zerolog.Nop())

	summary, err := s.Summarize(context.Background(), domain.SummaryInput{
		Subject: "https://example.com",
		Kind:    domain.SubjectKindURL,
	}, domain.Profile{Description: "engineer"})
	require.NoError(t, err)

	assert.Equal(t, "Example", summary.Title)
	assert.Equal(t, "gemini-2.5-flash", fake.model)
	assert.Equal(t, "application/json", fake.config.ResponseMIMEType)
	require.NotNil(t, fake.config.SystemInstruction)
	require.Len(t, fake.contents, 1)
	assert.Contains(t, fake.contents[0].Parts[0].Text, "About: engineer")
}

func TestSummarizeWithoutCandidates(t *testing.T) {
	t.Parallel()

	s := newWithGenerator(&fakeGenerator{resp: &genai.GenerateContentResponse{}}, "m", zerolog.Nop())

	_, err := s.Summarize(context.Background(), domain.SummaryInput{Subject: "x", Kind: domain.SubjectKindTopic}, domain.Profile{})
	require.ErrorIs(t, err, domain.ErrInvalidSummaryShape)
}

func TestSummarizeSurfacesClientErrors(t *testing.T) {
	t.Parallel()

	s := newWithGenerator(&fakeGenerator{err: errors.New("quota exceeded")}, "m", zerolog.Nop())

	_, err := s.Summarize(context.Background(), domain.SummaryInput{Subject: "x", Kind: domain.SubjectKindTopic}, domain.Profile{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "gemini generate content: quota exceeded")
}

func TestNewRequiresKeyAndModel(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{Model: "m"}, zerolog.Nop())
	require.Error(t, err)
	_, err = New(context.Background(), Config{APIKey: "k"}, zerolog.Nop())
	require.Error(t, err)
}
