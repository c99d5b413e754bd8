// Package cache stores rendered histogram images keyed by their content hash.
package cache

import (
	"context"
	"time"
)

// ImageCache is a byte store for rendered images. A miss is (nil, false, nil).
type ImageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, img []byte) error
	Close() error
}

// Nop never stores anything; used when Redis is not configured.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error         { return nil }
func (Nop) Close() error                                      { return nil }

var (
	_ ImageCache = Nop{}
	_ ImageCache = (*RedisCache)(nil)
)

const (
	keyPrefix  = "histogram:"
	defaultTTL = 10 * time.Minute
)

func histogramKey(key string) string {
	return keyPrefix + key
}
