package podcache

import (
	"fmt"
	"time"
)

// Config bundles the cache tunables the SDK client passes down per
// network environment.
type Config struct {
	// Enabled turns caching off entirely when false; a Loader built
	// with a disabled Config calls straight through to its fetcher.
	Enabled bool
	// MaxSize caps the number of entries per cache.
	MaxSize int
	// DefaultTTL is applied to every entry.
	DefaultTTL time.Duration
}

// DefaultConfig suits devnet development: small cache, 5 minute TTL.
func DefaultConfig() Config {
	return Config{Enabled: true, MaxSize: 1000, DefaultTTL: 5 * time.Minute}
}

// ProductionConfig suits mainnet traffic: larger cache, 10 minute TTL.
func ProductionConfig() Config {
	return Config{Enabled: true, MaxSize: 10000, DefaultTTL: 10 * time.Minute}
}

// DisabledConfig turns caching off, as used against localnet where
// state churns on every test run.
func DisabledConfig() Config {
	return Config{Enabled: false}
}

// Validate rejects configurations the caches cannot be built from.
// Disabled configs are always valid.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.MaxSize < 1 {
		return fmt.Errorf("podcache: config max size must be at least 1, got %d", c.MaxSize)
	}
	if c.DefaultTTL < 0 {
		return fmt.Errorf("podcache: config TTL must not be negative, got %v", c.DefaultTTL)
	}
	return nil
}
