// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events from the GraphML load pipeline and the indexed conversion.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLoadHooks(&myLoadHooks{})
//	    // ... run application
//	}
//
// The graphml package calls the hooks as each stage finishes:
//
//	observability.Load().OnParseComplete(source, nodes, edges, duration, err)
//	observability.Load().OnValidateComplete(source, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Load Hooks
// =============================================================================

// LoadHooks receives events from the document pipeline.
type LoadHooks interface {
	// OnParseComplete fires after decoding, successful or not. On failure
	// the counts are zero.
	OnParseComplete(source string, nodes, edges int, duration time.Duration, err error)

	// OnValidateComplete fires after the consistency pass.
	OnValidateComplete(source string, duration time.Duration, err error)

	// OnConvertComplete fires after a graph was moved into an indexed graph.
	OnConvertComplete(graphID string, vertices, edges int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLoadHooks is a no-op implementation of LoadHooks.
type NoopLoadHooks struct{}

func (NoopLoadHooks) OnParseComplete(string, int, int, time.Duration, error) {}
func (NoopLoadHooks) OnValidateComplete(string, time.Duration, error)         {}
func (NoopLoadHooks) OnConvertComplete(string, int, int, time.Duration)       {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	loadHooks LoadHooks = NoopLoadHooks{}
	hooksMu   sync.RWMutex
)

// SetLoadHooks registers custom load hooks.
// This should be called once at application startup before any documents are loaded.
func SetLoadHooks(h LoadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loadHooks = h
	}
}

// Load returns the registered load hooks.
func Load() LoadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loadHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	loadHooks = NoopLoadHooks{}
}
