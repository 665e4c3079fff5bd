// Package openai summarizes through the OpenAI chat completions API with a JSON schema
// response format.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/kb-summarizer/internal/adapters/summarizer"
	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"
)

var _ ports.Summarizer = (*Summarizer)(nil)

type Summarizer struct {
	client openai.Client
	model  string
	log    zerolog.Logger
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

func New(cfg Config, log zerolog.Logger) (*Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("openai model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Summarizer{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		log:    log.With().Str("provider", "openai").Logger(),
	}, nil
}

func (s *Summarizer) Summarize(ctx context.Context, input domain.SummaryInput, profile domain.Profile) (domain.SummaryResult, error) {
	system, user := summarizer.Prompt(input, profile)

	req := openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   summarizer.SchemaName,
					Schema: summarizer.Schema(),
					Strict: openai.Bool(false),
				},
			},
		},
	}

	s.log.Debug().Str("model", s.model).Int("sources", len(input.Sources)).Msg("Requesting chat completion")
	resp, err := s.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return domain.SummaryResult{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain.SummaryResult{}, fmt.Errorf("%w: no choices returned", domain.ErrInvalidSummaryShape)
	}

	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return domain.SummaryResult{}, fmt.Errorf("%w: model refused: %s", domain.ErrInvalidSummaryShape, choice.Message.Refusal)
	}
	s.log.Debug().Str("finish_reason", choice.FinishReason).Int64("total_tokens", resp.Usage.TotalTokens).Msg("Chat completion finished")

	return summarizer.Decode(choice.Message.Content)
}
