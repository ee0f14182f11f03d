// Package metadata is the local key/value store of the client. The session
// token lives here so that it survives restarts.
package metadata

import (
	"context"
)

// Repository is a string-keyed blob store. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
