// Package gemini summarizes through the Gemini API with JSON output.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/kb-summarizer/internal/adapters/summarizer"
	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

var _ ports.Summarizer = (*Summarizer)(nil)

// contentGenerator is the part of *genai.Models the summarizer needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Summarizer struct {
	models contentGenerator
	model  string
	log    zerolog.Logger
}

type Config struct {
	APIKey string
	Model  string
}

func New(ctx context.Context, cfg Config, log zerolog.Logger) (*Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("gemini model is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newWithGenerator(client.Models, cfg.Model, log), nil
}

func newWithGenerator(models contentGenerator, model string, log zerolog.Logger) *Summarizer {
	return &Summarizer{
		models: models,
		model:  model,
		log:    log.With().Str("provider", "gemini").Logger(),
	}
}

func (s *Summarizer) Summarize(ctx context.Context, input domain.SummaryInput, profile domain.Profile) (domain.SummaryResult, error) {
	system, user := summarizer.Prompt(input, profile)

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, "user"),
		ResponseMIMEType:  "application/json",
	}

	s.log.Debug().Str("model", s.model).Int("sources", len(input.Sources)).Msg("Requesting content generation")
	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(user), config)
	if err != nil {
		return domain.SummaryResult{}, fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return domain.SummaryResult{}, fmt.Errorf("%w: no candidates returned", domain.ErrInvalidSummaryShape)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" && !part.Thought {
			text.WriteString(part.Text)
		}
	}

	return summarizer.Decode(text.String())
}
