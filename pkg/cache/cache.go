// Package cache stores computed axis layouts and rendered artifacts.
//
// # Backends
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: JSON entry files under a directory, for CLI use
//   - [RedisCache]: Redis strings with native expiry, for shared API servers
//   - [MongoCache]: documents in a MongoDB collection with an expiry field
//
// [Open] selects a backend from a URL so the CLI and server share one flag.
//
// # Keys
//
// A [Keyer] derives keys from content hashes plus the options that affect
// the cached value. Layouts are keyed by the hash of the axis configuration;
// artifacts by the hash of the layout they were rendered from.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry. A miss is reported as
// (nil, false, nil); errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts holds the options that change a computed layout.
type LayoutKeyOpts struct {
	AxisLength       float64 `json:"axis_length"`
	MinorSplitNumber int     `json:"minor_split_number"`
	Clamp            bool    `json:"clamp"`
}

// ArtifactKeyOpts holds the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	ShowMinor  bool    `json:"show_minor"`
	NoLabels   bool    `json:"no_labels"`
	SplitLines bool    `json:"split_lines"`
	Bands      bool    `json:"bands"`
	Scale      float64 `json:"scale"`
}

// Keyer builds cache keys.
type Keyer interface {
	LayoutKey(configHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the content hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns "layout:<sha256>".
func (DefaultKeyer) LayoutKey(configHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", configHash, opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
