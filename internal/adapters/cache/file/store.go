package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/kb-summarizer/internal/domain"
	"github.com/bnema/kb-summarizer/internal/ports"
	"github.com/rs/zerolog"
)

const (
	cacheDirMode    = 0o755
	cacheFileMode   = 0o644
	entrySuffix     = ".json"
	// Temp files never carry entrySuffix, so Get and Prune ignore half-written entries.
	tempFilePattern = ".entry-*.tmp"
)

// Store keeps one pretty-printed JSON file per fingerprint. Entries are never mutated
// in place; only Prune removes them.
type Store struct {
	root  string
	log   zerolog.Logger
	clock ports.Clock
	mu    sync.RWMutex
}

var _ ports.SummaryCache = (*Store)(nil)

func NewStore(root string, log zerolog.Logger, clock ports.Clock) *Store {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Store{
		root:  filepath.Clean(root),
		log:   log.With().Str("component", "cache").Logger(),
		clock: clock,
	}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Get(ctx context.Context, key domain.Fingerprint) (domain.SummaryResult, bool) {
	if err := ctx.Err(); err != nil {
		return domain.SummaryResult{}, false
	}

	path, err := s.pathForKey(key)
	if err != nil {
		s.log.Warn().Err(err).Msg("Error reading from cache")
		return domain.SummaryResult{}, false
	}

	s.mu.RLock()
	data, err := os.ReadFile(path)
	s.mu.RUnlock()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", path).Msg("Error reading from cache")
		}
		return domain.SummaryResult{}, false
	}

	var summary domain.SummaryResult
	if err := json.Unmarshal(data, &summary); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("Ignoring corrupt cache entry")
		return domain.SummaryResult{}, false
	}

	return summary, true
}

func (s *Store) Put(ctx context.Context, key domain.Fingerprint, summary domain.SummaryResult) {
	if err := s.put(ctx, key, summary); err != nil {
		s.log.Warn().Err(err).Str("key", key.String()).Msg("Error writing to cache")
	}
}

func (s *Store) put(ctx context.Context, key domain.Fingerprint, summary domain.SummaryResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForKey(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.root, cacheDirMode); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	return writeAtomic(path, data)
}

// writeAtomic writes data next to path and renames it into place, so a concurrent
// reader sees either the previous entry or the complete new one.
func writeAtomic(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp cache entry: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp cache entry: %w", err)
	}

	if err := tempFile.Chmod(cacheFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp cache entry: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp cache entry: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace cache entry: %w", err)
	}
	cleanup = false

	return nil
}

// Prune removes entries last written more than olderThan ago and reports how many were
// removed. A missing cache directory prunes nothing.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("prune age must be positive, got %s", olderThan)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("list cache directory: %w", err)
	}

	cutoff := s.clock.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), entrySuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return removed, fmt.Errorf("stat cache entry %q: %w", entry.Name(), err)
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.root, entry.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("delete cache entry %q: %w", entry.Name(), err)
		}
		removed++
	}

	return removed, nil
}

func (s *Store) pathForKey(key domain.Fingerprint) (string, error) {
	trimmed := strings.TrimSpace(key.String())
	if trimmed == "" {
		return "", errors.New("cache key is empty")
	}
	if strings.ContainsAny(trimmed, `/\.`) {
		return "", fmt.Errorf("invalid cache key %q", key)
	}

	return filepath.Join(s.root, trimmed+entrySuffix), nil
}
