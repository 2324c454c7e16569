// Package cache persists opaque values by string key across restarts.
// A missing key is a normal outcome, not an error: Get returns (nil, nil).
package cache

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
