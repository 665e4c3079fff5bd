package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/kb-summarizer/internal/domain"
)

// CredentialPrefix marks a value that names a stored credential instead of holding it,
// e.g. notion.token = "secret://notion/token".
const CredentialPrefix = "secret://"

type CredentialReader interface {
	Get(ctx context.Context, key string) (string, error)
}

// ResolveCredentials replaces every secret:// reference among the API keys with the
// stored value. Plain values are left untouched.
func (c *Config) ResolveCredentials(ctx context.Context, reader CredentialReader) error {
	fields := []struct {
		key   string
		value *string
	}{
		{keyNotionToken, &c.Notion.Token},
		{keySearchAPIKey, &c.Search.APIKey},
		{keyOpenAIAPIKey, &c.Summarizer.OpenAIKey},
		{keyGeminiAPIKey, &c.Summarizer.GeminiAPIKey},
	}

	var errs []error
	for _, field := range fields {
		ref, ok := strings.CutPrefix(*field.value, CredentialPrefix)
		if !ok {
			continue
		}
		if reader == nil {
			errs = append(errs, fmt.Errorf("%s references %q but no credential store is configured", field.key, ref))
			continue
		}

		value, err := reader.Get(ctx, ref)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			errs = append(errs, fmt.Errorf("%s: resolve %q: %w", field.key, ref, err))
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			errs = append(errs, fmt.Errorf("%s: stored credential %q is empty", field.key, ref))
			continue
		}
		*field.value = value
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
}
