package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/kb-summarizer/internal/blocktree"
	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports"
	"github.com/rs/zerolog"
)

// MaxSearchResults bounds how many search hits are handed to the summarizer.
const MaxSearchResults = 10

var ErrNoSink = errors.New("no output sink configured")

type Request struct {
	ProfileName domain.ProfileName
	Subject     string
	Kind        domain.SubjectKind
	Sink        ports.Sink
	SkipCache   bool
}

type Outcome struct {
	Summary     domain.SummaryResult
	Blocks      []domain.Block
	Receipt     domain.PublishReceipt
	CacheHit    bool
	Fingerprint domain.Fingerprint
}

type Service struct {
	profiles   ports.ProfileRepository
	cache      ports.SummaryCache
	fetcher    ports.ContentFetcher
	searcher   ports.Searcher
	summarizer ports.Summarizer
	log        zerolog.Logger
}

// NewService wires the pipeline. fetcher and searcher may be nil when the caller knows
// the subject kind does not need them.
func NewService(
	profiles ports.ProfileRepository,
	cache ports.SummaryCache,
	fetcher ports.ContentFetcher,
	searcher ports.Searcher,
	summarizer ports.Summarizer,
	log zerolog.Logger,
) *Service {
	return &Service{
		profiles:   profiles,
		cache:      cache,
		fetcher:    fetcher,
		searcher:   searcher,
		summarizer: summarizer,
		log:        log.With().Str("component", "pipeline").Logger(),
	}
}

func (s *Service) Process(ctx context.Context, req Request) (Outcome, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return Outcome{}, fmt.Errorf("%w: subject is empty", domain.ErrUnsupportedSubject)
	}
	if req.Sink == nil {
		return Outcome{}, ErrNoSink
	}

	profile, err := s.profiles.GetByName(ctx, req.ProfileName)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve profile: %w", err)
	}
	s.log.Info().Str("profile", string(profile.Name)).Msg("Profile resolved")

	kind := req.Kind.Resolve(subject)
	if kind == domain.SubjectKindURL && !domain.IsWebURL(subject) {
		return Outcome{}, fmt.Errorf("%w: %q is not an http(s) URL", domain.ErrUnsupportedSubject, subject)
	}

	key := domain.ComputeFingerprint(subject, profile.Context())
	outcome := Outcome{Fingerprint: key}

	summary, hit := domain.SummaryResult{}, false
	if req.SkipCache {
		s.log.Debug().Msg("Cache lookup skipped")
	} else {
		summary, hit = s.cache.Get(ctx, key)
	}

	if hit {
		s.log.Info().Str("fingerprint", key.String()).Msg("Cache hit")
	} else {
		summary, err = s.generate(ctx, subject, kind, profile)
		if err != nil {
			return outcome, err
		}
		if !summary.HasErrors() {
			s.cache.Put(ctx, key, summary)
		}
	}
	outcome.Summary = summary
	outcome.CacheHit = hit

	if summary.HasErrors() {
		for _, summaryErr := range summary.Errors {
			s.log.Error().Str("url", summaryErr.URL).Str("error", summaryErr.Error).Msg("Summary reported an error")
		}
		return outcome, domain.ErrErroneousSummary
	}

	blocks, err := blocktree.Render(summary)
	if err != nil {
		return outcome, fmt.Errorf("render block tree: %w", err)
	}
	outcome.Blocks = blocks

	receipt, err := req.Sink.Publish(ctx, summary, blocks)
	if err != nil {
		return outcome, fmt.Errorf("publish summary: %w", err)
	}
	outcome.Receipt = receipt
	s.log.Info().Str("location", receipt.Location).Int("blocks", domain.CountBlocks(blocks)).Msg("Published")

	return outcome, nil
}

func (s *Service) generate(ctx context.Context, subject string, kind domain.SubjectKind, profile domain.Profile) (domain.SummaryResult, error) {
	sources, err := s.gatherSources(ctx, subject, kind)
	if err != nil {
		return domain.SummaryResult{}, err
	}

	if s.summarizer == nil {
		return domain.SummaryResult{}, errors.New("no summarizer configured")
	}

	s.log.Info().Str("kind", string(kind)).Int("sources", len(sources)).Msg("Generating summary")
	input := domain.SummaryInput{Subject: subject, Kind: kind, Sources: sources}
	summary, err := s.summarizer.Summarize(ctx, input, profile)
	if err != nil {
		return domain.SummaryResult{}, fmt.Errorf("generate summary: %w", err)
	}

	return inheritSubject(summary, input), nil
}

func (s *Service) gatherSources(ctx context.Context, subject string, kind domain.SubjectKind) ([]domain.SourceDocument, error) {
	switch kind {
	case domain.SubjectKindURL:
		if s.fetcher == nil {
			return nil, errors.New("no content fetcher configured")
		}
		doc, err := s.fetcher.Fetch(ctx, subject)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", subject, err)
		}
		return []domain.SourceDocument{doc}, nil
	case domain.SubjectKindTopic:
		if s.searcher == nil {
			return nil, errors.New("no searcher configured")
		}
		docs, err := s.searcher.Search(ctx, subject)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", subject, err)
		}
		if len(docs) == 0 {
			return nil, fmt.Errorf("%w: %q", domain.ErrEmptySearchResults, subject)
		}
		if len(docs) > MaxSearchResults {
			docs = docs[:MaxSearchResults]
		}
		return docs, nil
	default:
		return nil, fmt.Errorf("%w: kind %q", domain.ErrUnsupportedSubject, kind)
	}
}

func inheritSubject(summary domain.SummaryResult, input domain.SummaryInput) domain.SummaryResult {
	if strings.TrimSpace(summary.URL) == "" {
		switch {
		case input.Kind == domain.SubjectKindURL:
			summary.URL = input.Subject
		case len(input.Sources) > 0:
			summary.URL = input.Sources[0].URL
		}
	}
	if input.Kind == domain.SubjectKindTopic && strings.TrimSpace(summary.Topic) == "" {
		summary.Topic = input.Subject
	}

	return summary
}
