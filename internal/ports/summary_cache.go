package ports

import (
	"context"

	"github.com/bnema/kb-summarizer/internal/domain"
)

// SummaryCache never fails a lookup: any read problem is reported as a miss.
type SummaryCache interface {
	Get(ctx context.Context, key domain.Fingerprint) (domain.SummaryResult, bool)
	Put(ctx context.Context, key domain.Fingerprint, summary domain.SummaryResult)
}
