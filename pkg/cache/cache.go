// Package cache stores rendered previews keyed by content hash.
//
// Previews are deterministic, so a preview is fully identified by the
// profile it was planned from, the viewport size, the output format and the
// raster scale. [PreviewKey] folds those into a single key; [Fetch] wraps
// a lookup-or-render round trip and reports hits and misses through
// [observability.Cache].
//
// Two implementations are provided: [FileCache] for the CLI and the preview
// server, and [NullCache] for --no-cache runs and tests.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/screenfit/pkg/observability"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// PreviewKeyOpts identifies one rendering of a profile.
type PreviewKeyOpts struct {
	Format string  `json:"format"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale,omitempty"`
}

// PreviewKey returns the cache key of a preview of the profile whose encoded
// form hashes to profileHash.
func PreviewKey(profileHash string, opts PreviewKeyOpts) string {
	return hashKey("preview:"+opts.Format, profileHash, opts)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashJSON hashes the JSON encoding of v.
func HashJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Hash(data), nil
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Fetch returns the cached value for key, or calls render and stores its
// result for ttl. keyType labels the observability events. A failing store
// is not fatal: the rendered value is still returned.
func Fetch(ctx context.Context, c Cache, key, keyType string, ttl time.Duration, render func() ([]byte, error)) ([]byte, bool, error) {
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, keyType)

	data, err := render()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, data, ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, keyType, len(data))
	}
	return data, false, nil
}
