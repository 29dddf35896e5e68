// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with validated updates and reload
// propagation.

package control

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/momentics/hioload-resume/api"
)

// Config holds driver tunables.
type Config struct {
	// EventBatch is the number of readiness events fetched per wait.
	EventBatch int
	// PollTimeoutMs bounds one reactor wait; negative blocks indefinitely.
	PollTimeoutMs int
	// LogLevel is the minimum level for driver and example loggers.
	LogLevel slog.Level
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		EventBatch:    16,
		PollTimeoutMs: -1,
		LogLevel:      slog.LevelInfo,
	}
}

// Validate rejects unusable values.
func (c Config) Validate() error {
	if c.EventBatch <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "event batch must be positive").
			WithContext("event_batch", c.EventBatch)
	}
	return nil
}

// ConfigStore keeps the current Config and notifies listeners on change.
type ConfigStore struct {
	mu        sync.RWMutex
	config    Config
	listeners []func(Config)
}

// NewConfigStore initializes a store with cfg, falling back to defaults when
// cfg is invalid.
func NewConfigStore(cfg Config) *ConfigStore {
	if cfg.Validate() != nil {
		cfg = DefaultConfig()
	}
	return &ConfigStore{config: cfg}
}

// Snapshot returns a copy of the current configuration.
func (cs *ConfigStore) Snapshot() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.config
}

// Update applies fn to a copy of the configuration and publishes it when the
// result validates. Listeners run synchronously after the store is unlocked.
func (cs *ConfigStore) Update(fn func(*Config)) error {
	cs.mu.Lock()
	next := cs.config
	fn(&next)
	if err := next.Validate(); err != nil {
		cs.mu.Unlock()
		return fmt.Errorf("config update: %w", err)
	}
	cs.config = next
	listeners := slices.Clone(cs.listeners)
	cs.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return nil
}

// OnReload registers a listener called with each accepted configuration.
func (cs *ConfigStore) OnReload(fn func(Config)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
