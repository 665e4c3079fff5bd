package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/kb-summarizer/internal/blocktree"
	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type PublisherConfig struct {
	RootPageID    string
	SourcesTitle  string
	DatabaseTitle string
}

// Publisher commits a rendered summary to the remote store: a sub-page under the
// Sources container and one row in the tabular index. Containers are re-resolved on
// every call.
type Publisher struct {
	store ports.DocumentStore
	cfg   PublisherConfig
	log   zerolog.Logger
}

func NewPublisher(store ports.DocumentStore, cfg PublisherConfig, log zerolog.Logger) *Publisher {
	return &Publisher{
		store: store,
		cfg:   cfg,
		log:   log.With().Str("component", "publisher").Logger(),
	}
}

func (p *Publisher) Publish(ctx context.Context, summary domain.SummaryResult, blocks []domain.Block) (domain.PublishReceipt, error) {
	if summary.HasErrors() {
		return domain.PublishReceipt{}, domain.ErrErroneousSummary
	}

	var sourcesID, databaseID string
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		id, err := p.resolveSourcesPage(groupCtx)
		sourcesID = id
		return err
	})
	group.Go(func() error {
		id, err := p.resolveDatabase(groupCtx)
		databaseID = id
		return err
	})
	if err := group.Wait(); err != nil {
		return domain.PublishReceipt{}, err
	}

	title := summary.DisplayTitle()
	pageID, err := p.store.CreatePage(ctx, sourcesID, title, blocks)
	if err != nil {
		return domain.PublishReceipt{}, fmt.Errorf("create summary page: %w", err)
	}
	p.log.Info().Str("page_id", pageID).Str("title", title).Msg("Created summary page")

	pageURL := domain.CanonicalPageURL(pageID)
	rowID, err := p.store.CreateDatabaseRow(ctx, databaseID, indexRow(summary, title, pageURL))
	if err != nil {
		return domain.PublishReceipt{}, fmt.Errorf("create index row for page %s: %w", pageID, err)
	}
	p.log.Info().Str("row_id", rowID).Str("database_id", databaseID).Msg("Added index row")

	return domain.PublishReceipt{
		SubPageID:       pageID,
		DatabaseEntryID: rowID,
		Location:        pageURL,
	}, nil
}

func (p *Publisher) resolveSourcesPage(ctx context.Context) (string, error) {
	hits, err := p.store.Search(ctx, p.cfg.SourcesTitle, domain.ObjectKindPage)
	if err != nil {
		return "", fmt.Errorf("search sources page: %w", err)
	}

	for _, hit := range hits {
		if hit.Kind == domain.ObjectKindPage && hit.Title == p.cfg.SourcesTitle && sameID(hit.ParentID, p.cfg.RootPageID) {
			p.log.Debug().Str("page_id", hit.ID).Msg("Reusing sources page")
			return hit.ID, nil
		}
	}

	id, err := p.store.CreatePage(ctx, p.cfg.RootPageID, p.cfg.SourcesTitle, nil)
	if err != nil {
		return "", fmt.Errorf("create sources page: %w", err)
	}
	p.log.Info().Str("page_id", id).Msg("Created sources page")

	return id, nil
}

// resolveDatabase reuses the first matching database that retrieve accepts. Matches
// that retrieve rejects are skipped; a new database is created only when none is left.
func (p *Publisher) resolveDatabase(ctx context.Context) (string, error) {
	hits, err := p.store.Search(ctx, p.cfg.DatabaseTitle, domain.ObjectKindDatabase)
	if err != nil {
		return "", fmt.Errorf("search index database: %w", err)
	}

	for _, hit := range hits {
		if hit.Kind != domain.ObjectKindDatabase || hit.Title != p.cfg.DatabaseTitle {
			continue
		}
		if err := p.store.RetrieveDatabase(ctx, hit.ID); err != nil {
			p.log.Warn().Err(err).Str("database_id", hit.ID).Msg("Index database found but not accessible, skipping")
			continue
		}
		p.log.Debug().Str("database_id", hit.ID).Msg("Reusing index database")
		return hit.ID, nil
	}

	id, err := p.store.CreateDatabase(ctx, p.cfg.RootPageID, p.cfg.DatabaseTitle, domain.IndexColumns())
	if err != nil {
		return "", fmt.Errorf("create index database: %w", err)
	}
	p.log.Info().Str("database_id", id).Msg("Created index database")

	return id, nil
}

func indexRow(summary domain.SummaryResult, title, pageURL string) []domain.PropertyValue {
	practical := ""
	if summary.PracticalApplication != nil {
		practical = blocktree.RelevanceText(*summary.PracticalApplication)
	}

	return []domain.PropertyValue{
		domain.TitleValue(domain.ColumnName, title),
		domain.URLValue(domain.ColumnURL, summary.URL),
		domain.RichTextValue(domain.ColumnTopic, summary.Topic),
		domain.MultiSelectValue(domain.ColumnTags, summary.Tags),
		domain.RichTextValue(domain.ColumnSummary, summary.Summary),
		domain.RichTextValue(domain.ColumnPracticalApplication, practical),
		domain.URLValue(domain.ColumnDetailedPage, pageURL),
	}
}

// Remote ids come back dashed while the configured root may not be.
func sameID(a, b string) bool {
	return strings.EqualFold(strings.ReplaceAll(a, "-", ""), strings.ReplaceAll(b, "-", ""))
}
