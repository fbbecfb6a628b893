// Package signal cancels the run context when the process is interrupted.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages (to avoid circular dependencies)
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler wraps a context and cancels it on SIGINT or SIGTERM, so an
// interrupted run stops its git subprocess and in-flight webhook request
// instead of being killed mid-delivery.
type Handler struct {
	ctx    context.Context //nolint:containedctx // intentional: handler manages context lifecycle
	cancel context.CancelFunc
	sigs   chan os.Signal
	stop   sync.Once
}

// NewHandler creates a handler listening for SIGINT and SIGTERM.
//
// Usage:
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	ctx = h.Context()
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:    ctx,
		cancel: cancel,
		// Buffer of 1 so signal.Notify never drops the first signal.
		sigs: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigs, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the cancellable context. Use it for all interruptible work.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Stop unregisters the signal listener and cancels the context.
// Always call this when done to prevent resource leaks.
func (h *Handler) Stop() {
	h.stop.Do(func() {
		signal.Stop(h.sigs)
		h.cancel()
	})
}

func (h *Handler) listen() {
	select {
	case <-h.sigs:
		h.cancel()
	case <-h.ctx.Done():
	}
}
