package ports

import (
	"context"

	"github.com/bnema/kb-summarizer/internal/domain"
)

type DocumentStore interface {
	Search(ctx context.Context, query string, kind domain.ObjectKind) ([]domain.RemoteObject, error)
	RetrieveDatabase(ctx context.Context, databaseID string) error
	CreatePage(ctx context.Context, parentPageID string, title string, blocks []domain.Block) (string, error)
	CreateDatabase(ctx context.Context, parentPageID string, title string, columns []domain.Column) (string, error)
	CreateDatabaseRow(ctx context.Context, databaseID string, values []domain.PropertyValue) (string, error)
}

type Sink interface {
	Publish(ctx context.Context, summary domain.SummaryResult, blocks []domain.Block) (domain.PublishReceipt, error)
}
