// Package observability provides hooks for reporting edit runs.
//
// Libraries emit events through the registered hooks; the application
// decides what to do with them. The CLI prints each change, a test can
// record them, and the default does nothing. The package imports none of
// the domain packages so any of them can emit events.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEditHooks(&printer{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Edit().OnLoad(ctx, path, len(g.Exports), len(g.Imports), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Edit Hooks
// =============================================================================

// EditHooks receives events from an edit run.
type EditHooks interface {
	// OnLoad records a package load.
	OnLoad(ctx context.Context, path string, exports, imports int, duration time.Duration, err error)

	// OnChange records one applied edit; kind is a short category such as
	// "import-outer" and message describes the change for an operator.
	OnChange(ctx context.Context, kind, message string)

	// OnWarning records a failed edit the run continues past.
	OnWarning(ctx context.Context, err error)

	// OnTransplant records one copied entry, src and dst being reference
	// indices in signed form and kind "export" or "import".
	OnTransplant(ctx context.Context, kind string, src, dst int32, name string)

	// OnSave records a package write.
	OnSave(ctx context.Context, path string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopEditHooks is a no-op implementation of EditHooks.
type NoopEditHooks struct{}

func (NoopEditHooks) OnLoad(context.Context, string, int, int, time.Duration, error) {}
func (NoopEditHooks) OnChange(context.Context, string, string)                       {}
func (NoopEditHooks) OnWarning(context.Context, error)                               {}
func (NoopEditHooks) OnTransplant(context.Context, string, int32, int32, string)     {}
func (NoopEditHooks) OnSave(context.Context, string, time.Duration, error)           {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	editHooks EditHooks = NoopEditHooks{}
	hooksMu   sync.RWMutex
)

// SetEditHooks registers custom edit hooks. A nil h is ignored.
// This should be called once at application startup before any run.
func SetEditHooks(h EditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editHooks = h
	}
}

// Edit returns the registered edit hooks.
func Edit() EditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editHooks = NoopEditHooks{}
}
