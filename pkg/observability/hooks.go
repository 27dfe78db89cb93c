// Package observability provides hooks for scan and report instrumentation.
//
// Consumers register hooks at startup to receive events about the directory
// scan (manifests parsed or skipped) and report rendering, without the
// libraries depending on any metrics or tracing backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetScanHooks(&myScanHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scan().OnManifestSkipped(ctx, path, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Scan Hooks
// =============================================================================

// ScanHooks receives events from a directory scan.
type ScanHooks interface {
	OnScanStart(ctx context.Context, root string)
	OnScanComplete(ctx context.Context, root string, records int, duration time.Duration, err error)

	// OnManifestParsed fires once per manifest that was read and parsed.
	OnManifestParsed(ctx context.Context, project string, records int)
	// OnManifestSkipped fires for manifests that could not be read or parsed.
	OnManifestSkipped(ctx context.Context, project string, err error)
}

// =============================================================================
// Report Hooks
// =============================================================================

// ReportHooks receives events from report rendering.
type ReportHooks interface {
	OnReport(ctx context.Context, format string, records int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScanHooks is a no-op implementation of ScanHooks.
type NoopScanHooks struct{}

func (NoopScanHooks) OnScanStart(context.Context, string)                               {}
func (NoopScanHooks) OnScanComplete(context.Context, string, int, time.Duration, error) {}
func (NoopScanHooks) OnManifestParsed(context.Context, string, int)                     {}
func (NoopScanHooks) OnManifestSkipped(context.Context, string, error)                  {}

// NoopReportHooks is a no-op implementation of ReportHooks.
type NoopReportHooks struct{}

func (NoopReportHooks) OnReport(context.Context, string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scanHooks   ScanHooks   = NoopScanHooks{}
	reportHooks ReportHooks = NoopReportHooks{}
	hooksMu     sync.RWMutex
)

// SetScanHooks registers custom scan hooks.
// This should be called once at application startup before any scan.
func SetScanHooks(h ScanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scanHooks = h
	}
}

// SetReportHooks registers custom report hooks.
func SetReportHooks(h ReportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reportHooks = h
	}
}

// Scan returns the registered scan hooks.
func Scan() ScanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scanHooks
}

// Report returns the registered report hooks.
func Report() ReportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scanHooks = NoopScanHooks{}
	reportHooks = NoopReportHooks{}
}
