// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about the ingest, layout and write stages of a diagram run.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline runner calls hooks to emit events:
//
//	observability.Pipeline().OnIngestStart(ctx, path)
//	// ... read the dataset ...
//	observability.Pipeline().OnIngestComplete(ctx, path, records, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the diagram pipeline.
type PipelineHooks interface {
	// Ingest events
	OnIngestStart(ctx context.Context, path string)
	OnIngestComplete(ctx context.Context, path string, records int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, records int)
	OnLayoutComplete(ctx context.Context, primitives int, duration time.Duration)

	// Write events
	OnWriteStart(ctx context.Context, path string, formats []string)
	OnWriteComplete(ctx context.Context, path string, formats []string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnIngestStart(context.Context, string) {}
func (NoopPipelineHooks) OnIngestComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                   {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration) {}
func (NoopPipelineHooks) OnWriteStart(context.Context, string, []string)       {}
func (NoopPipelineHooks) OnWriteComplete(context.Context, string, []string, time.Duration, error) {
}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline runs.
// A nil argument is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
