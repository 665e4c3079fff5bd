package ports

import "context"

// CredentialStore keeps API tokens outside the config file. Keys are slash-separated
// names such as "notion/token".
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
