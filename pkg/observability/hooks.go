// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about adaptation passes, preview cache operations, and
// preview API requests.
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
//	    observability.SetAdaptHooks(&myAdaptHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Adapt().OnPassStart("resize", 1334, 750)
//	// ... run the pass ...
//	observability.Adapt().OnPassComplete("resize", "landscape", true, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Adaptation Hooks
// =============================================================================

// AdaptHooks receives events from the adaptation controller.
type AdaptHooks interface {
	// OnPassStart fires before a pass runs. trigger is "set" or "resize".
	OnPassStart(trigger string, width, height float64)

	// OnPassComplete fires after a pass commits or fails.
	OnPassComplete(trigger, orientation string, forceRotate bool, duration time.Duration, err error)

	// OnOrientationChange fires when resize callbacks are about to be invoked.
	OnOrientationChange(orientation string, callbacks int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from preview cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the preview API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAdaptHooks is a no-op implementation of AdaptHooks.
type NoopAdaptHooks struct{}

func (NoopAdaptHooks) OnPassStart(string, float64, float64)                      {}
func (NoopAdaptHooks) OnPassComplete(string, string, bool, time.Duration, error) {}
func (NoopAdaptHooks) OnOrientationChange(string, int)                           {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	adaptHooks AdaptHooks = NoopAdaptHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetAdaptHooks registers custom adaptation hooks.
// This should be called once at application startup before any controller is used.
func SetAdaptHooks(h AdaptHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		adaptHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Adapt returns the registered adaptation hooks.
func Adapt() AdaptHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return adaptHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	adaptHooks = NoopAdaptHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
