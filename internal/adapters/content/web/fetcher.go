// Package web fetches a page and reduces it to readable text for summarization.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog"
)

const (
	maxPageBytes     = 1 << 22
	defaultUserAgent = "kbs/1.0 (+https://github.com/bnema/kb-summarizer)"
	textSelector     = "h1,h2,h3,h4,p,li,pre"
)

var (
	_ ports.ContentFetcher = (*Fetcher)(nil)

	ErrNoReadableContent = errors.New("page has no readable content")
)

type languageDetector interface {
	DetectLanguageOf(text string) (lingua.Language, bool)
}

type Fetcher struct {
	HTTPClient     *http.Client
	UserAgent      string
	RequestTimeout time.Duration

	budget   TokenBudget
	detector languageDetector
	log      zerolog.Logger
}

// NewFetcher returns a fetcher that keeps at most maxTokens tokens of page text.
func NewFetcher(maxTokens int, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		budget:   NewTiktokenBudget(maxTokens, log),
		detector: defaultDetector(),
		log:      log.With().Str("component", "web_fetcher").Logger(),
	}
}

func defaultDetector() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English, lingua.French, lingua.German, lingua.Spanish, lingua.Portuguese,
			lingua.Italian, lingua.Dutch, lingua.Russian, lingua.Japanese, lingua.Chinese, lingua.Korean,
		).
		Build()
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (domain.SourceDocument, error) {
	pageURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		return domain.SourceDocument{}, fmt.Errorf("%w: %q is not an http(s) URL", domain.ErrUnsupportedSubject, rawURL)
	}

	body, err := f.get(ctx, pageURL)
	if err != nil {
		return domain.SourceDocument{}, err
	}

	title, text, err := extract(body, pageURL)
	if err != nil {
		return domain.SourceDocument{}, err
	}

	doc := domain.SourceDocument{
		URL:     pageURL.String(),
		Title:   title,
		Content: f.budget.Truncate(text),
	}
	if f.detector != nil {
		if language, ok := f.detector.DetectLanguageOf(text); ok {
			doc.Language = language.String()
		}
	}

	f.log.Debug().Str("url", doc.URL).Str("language", doc.Language).Int("chars", len(doc.Content)).Msg("Fetched page")

	return doc, nil
}

func (f *Fetcher) get(ctx context.Context, pageURL *url.URL) ([]byte, error) {
	reqCtx, cancel := f.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create page request: %w", err)
	}
	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	resp, err := f.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request page: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read page body: %w", err)
	}

	return body, nil
}

// extract prefers the readability article and falls back to the whole document when
// readability finds nothing.
func extract(body []byte, pageURL *url.URL) (string, string, error) {
	var title, text string

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), pageURL)
	if err == nil && strings.TrimSpace(article.Content) != "" {
		title = strings.TrimSpace(article.Title)
		text, err = textOf(article.Content)
		if err != nil {
			return "", "", err
		}
	}

	if text == "" {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			return "", "", fmt.Errorf("parse page html: %w", err)
		}
		if title == "" {
			title = normalizeSpace(doc.Find("title").First().Text())
		}
		doc.Find("script,style,noscript,nav,footer").Remove()
		text = blocksText(doc.Selection)
		if text == "" {
			text = normalizeSpace(doc.Find("body").Text())
		}
	}

	if text == "" {
		return "", "", ErrNoReadableContent
	}

	return title, text, nil
}

func textOf(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse article html: %w", err)
	}

	return blocksText(doc.Selection), nil
}

func blocksText(sel *goquery.Selection) string {
	var parts []string
	sel.Find(textSelector).Each(func(_ int, s *goquery.Selection) {
		// Nested matches (a p inside an li) would otherwise be emitted twice.
		if s.ParentsFiltered(textSelector).Length() > 0 {
			return
		}

		var text string
		if goquery.NodeName(s) == "pre" {
			text = strings.TrimSpace(s.Text())
		} else {
			text = normalizeSpace(s.Text())
		}
		if text == "" {
			return
		}

		switch goquery.NodeName(s) {
		case "h1", "h2", "h3", "h4":
			text = "# " + text
		case "li":
			text = "- " + text
		}
		parts = append(parts, text)
	})

	return strings.Join(parts, "\n\n")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (f *Fetcher) httpClient() *http.Client {
	if f.HTTPClient != nil {
		return f.HTTPClient
	}
	return http.DefaultClient
}

func (f *Fetcher) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := f.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, timeout)
}
