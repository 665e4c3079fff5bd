package ports

import (
	"context"

	"github.com/bnema/kb-summarizer/internal/domain"
)

type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (domain.SourceDocument, error)
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SourceDocument, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, input domain.SummaryInput, profile domain.Profile) (domain.SummaryResult, error)
}
