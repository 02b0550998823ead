// Package observability provides hooks for instrumenting the layout engine.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about interactions and project storage.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the engine dependency-free from observability frameworks
//   - Allows different backends to be plugged in later
//
// Interaction hooks fire on the pointer-move hot path; implementations must
// be cheap and must not block.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetInteractionHooks(&myInteractionHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Interaction Hooks
// =============================================================================

// InteractionHooks receives events from the drag/placement engine.
type InteractionHooks interface {
	// Placement events
	OnPlacement(kind string, accepted bool)

	// Drag events
	OnDragStart(objectID string)
	OnDragMove(objectID string, limited bool)
	OnDragEnd(objectID string, committed bool, distanceMm float64)
	OnDragCancel(objectID string)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from project persistence.
type StoreHooks interface {
	// OnProjectLoad records a project load attempt.
	OnProjectLoad(path string, objectCount int, err error)

	// OnProjectSave records a project save attempt.
	OnProjectSave(path string, duration time.Duration, err error)

	// OnAutosave records an autosave snapshot write.
	OnAutosave(path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopInteractionHooks is a no-op implementation of InteractionHooks.
type NoopInteractionHooks struct{}

func (NoopInteractionHooks) OnPlacement(string, bool)        {}
func (NoopInteractionHooks) OnDragStart(string)              {}
func (NoopInteractionHooks) OnDragMove(string, bool)         {}
func (NoopInteractionHooks) OnDragEnd(string, bool, float64) {}
func (NoopInteractionHooks) OnDragCancel(string)             {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnProjectLoad(string, int, error)           {}
func (NoopStoreHooks) OnProjectSave(string, time.Duration, error) {}
func (NoopStoreHooks) OnAutosave(string, error)                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	interactionHooks InteractionHooks = NoopInteractionHooks{}
	storeHooks       StoreHooks       = NoopStoreHooks{}
	hooksMu          sync.RWMutex
)

// SetInteractionHooks registers custom interaction hooks.
// This should be called once at application startup before any engine use.
func SetInteractionHooks(h InteractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		interactionHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any storage use.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Interaction returns the registered interaction hooks.
func Interaction() InteractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return interactionHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	interactionHooks = NoopInteractionHooks{}
	storeHooks = NoopStoreHooks{}
}
