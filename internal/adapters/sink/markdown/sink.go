// Package markdown writes summaries as markdown files with YAML front matter.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	outputDirMode  = 0o755
	outputFileMode = 0o644
	maxSlugRunes   = 80
	maxNameRetries = 100
)

var _ ports.Sink = (*Sink)(nil)

type Sink struct {
	dir   string
	clock ports.Clock
	log   zerolog.Logger
}

func NewSink(dir string, clock ports.Clock, log zerolog.Logger) *Sink {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Sink{
		dir:   filepath.Clean(dir),
		clock: clock,
		log:   log.With().Str("component", "markdown_sink").Logger(),
	}
}

type frontMatter struct {
	Title          string    `yaml:"title"`
	URL            string    `yaml:"url"`
	Topic          string    `yaml:"topic,omitempty"`
	Tags           []string  `yaml:"tags"`
	RelevanceScore *float64  `yaml:"relevance_score,omitempty"`
	GeneratedAt    time.Time `yaml:"generated_at"`
}

// Publish writes one new file per call. Existing files are never overwritten; a numeric
// suffix is added when the name is taken.
func (s *Sink) Publish(ctx context.Context, summary domain.SummaryResult, blocks []domain.Block) (domain.PublishReceipt, error) {
	if summary.HasErrors() {
		return domain.PublishReceipt{}, domain.ErrErroneousSummary
	}
	if err := ctx.Err(); err != nil {
		return domain.PublishReceipt{}, err
	}

	now := s.clock.Now().UTC()
	content, err := Document(summary, blocks, now)
	if err != nil {
		return domain.PublishReceipt{}, err
	}

	if err := os.MkdirAll(s.dir, outputDirMode); err != nil {
		return domain.PublishReceipt{}, fmt.Errorf("create output directory: %w", err)
	}

	base := now.Format(time.DateOnly) + "-" + Slugify(summary.DisplayTitle())
	path, err := s.create(base, content)
	if err != nil {
		return domain.PublishReceipt{}, err
	}

	s.log.Info().Str("path", path).Msg("Wrote summary file")

	return domain.PublishReceipt{
		SubPageID: strings.TrimSuffix(filepath.Base(path), ".md"),
		Location:  path,
	}, nil
}

func (s *Sink) create(base string, content []byte) (string, error) {
	for attempt := 1; attempt <= maxNameRetries; attempt++ {
		name := base + ".md"
		if attempt > 1 {
			name = fmt.Sprintf("%s-%d.md", base, attempt)
		}
		path := filepath.Join(s.dir, name)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, outputFileMode)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create summary file: %w", err)
		}

		if _, err := file.Write(content); err != nil {
			_ = file.Close()
			_ = os.Remove(path)
			return "", fmt.Errorf("write summary file: %w", err)
		}
		if err := file.Close(); err != nil {
			_ = os.Remove(path)
			return "", fmt.Errorf("close summary file: %w", err)
		}

		return path, nil
	}

	return "", fmt.Errorf("create summary file: too many files named %s", base)
}

// Document renders the front matter and the markdown body.
func Document(summary domain.SummaryResult, blocks []domain.Block, generatedAt time.Time) ([]byte, error) {
	meta := frontMatter{
		Title:       summary.DisplayTitle(),
		URL:         summary.URL,
		Topic:       summary.Topic,
		Tags:        summary.Tags,
		GeneratedAt: generatedAt,
	}
	if meta.Tags == nil {
		meta.Tags = []string{}
	}
	if summary.PracticalApplication != nil {
		score := summary.PracticalApplication.RelevanceScore
		meta.RelevanceScore = &score
	}

	encoded, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(encoded)
	buf.WriteString("---\n\n")
	buf.WriteString("# " + meta.Title + "\n\n")
	buf.WriteString(Body(blocks))

	return buf.Bytes(), nil
}

// Slugify lowercases title and collapses every run of non-alphanumerics to a dash.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	count := 0

	for _, r := range strings.ToLower(title) {
		if count >= maxSlugRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			count++
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
			count++
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "summary"
	}

	return slug
}
