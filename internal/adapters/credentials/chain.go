package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/kb-summarizer/internal/ports"
)

// Chain tries primary first and falls back to the second store on any error other
// than cancellation.
type Chain struct {
	primary  ports.CredentialStore
	fallback ports.CredentialStore
}

var _ ports.CredentialStore = (*Chain)(nil)

func NewChain(primary ports.CredentialStore, fallback ports.CredentialStore) (*Chain, error) {
	if primary == nil {
		return nil, errors.New("primary credential store is nil")
	}
	if fallback == nil {
		return nil, errors.New("fallback credential store is nil")
	}

	return &Chain{primary: primary, fallback: fallback}, nil
}

// NewPassFirst uses pass when it is installed and the directory under fileRoot otherwise.
func NewPassFirst(fileRoot string) (*Chain, error) {
	return NewChain(NewPassStore(), NewFileStore(fileRoot))
}

func (c *Chain) Put(ctx context.Context, key string, value string) error {
	err := c.primary.Put(ctx, key, value)
	if err == nil || isCancellation(err) {
		return err
	}

	if fallbackErr := c.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("store credential %q: primary: %w; fallback: %w", key, err, fallbackErr)
	}

	return nil
}

func (c *Chain) Get(ctx context.Context, key string) (string, error) {
	value, err := c.primary.Get(ctx, key)
	if err == nil || isCancellation(err) {
		return value, err
	}

	value, fallbackErr := c.fallback.Get(ctx, key)
	if fallbackErr != nil {
		return "", fmt.Errorf("read credential %q: primary: %w; fallback: %w", key, err, fallbackErr)
	}

	return value, nil
}

// Delete removes the key from both stores so a stale copy cannot resurface.
func (c *Chain) Delete(ctx context.Context, key string) error {
	err := c.primary.Delete(ctx, key)
	if isCancellation(err) {
		return err
	}

	if fallbackErr := c.fallback.Delete(ctx, key); fallbackErr != nil {
		if err != nil {
			return fmt.Errorf("delete credential %q: primary: %w; fallback: %w", key, err, fallbackErr)
		}
		return fallbackErr
	}

	return nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
