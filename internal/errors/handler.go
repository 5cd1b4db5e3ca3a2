package errors

import (
	"fmt"
	"log/slog"
	"os"
)

// Handler routes every error raised during setup or assembly through a
// single policy, in order of precedence:
//
//  1. a caller-supplied callback, if configured (non-fatal)
//  2. log-and-continue, if logging is enabled (non-fatal)
//  3. print diagnostics and terminate the process
//
// Errors are not categorized into kinds at this level; all failures are
// treated uniformly. Files written before a failure stay on disk.
type Handler struct {
	callback func(error)
	logging  bool
	logger   *slog.Logger

	// exit is swappable for tests.
	exit func(int)
}

// NewHandler creates a Handler. callback may be nil.
func NewHandler(callback func(error), logging bool, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		callback: callback,
		logging:  logging,
		logger:   logger,
		exit:     os.Exit,
	}
}

// Handle applies the policy to err. Nil errors are ignored.
func (h *Handler) Handle(err error) {
	if err == nil {
		return
	}
	if h.callback != nil {
		h.callback(err)
		return
	}
	if h.logging {
		h.logger.Error("assembly error", "category", GetCategory(err), "error", err)
		return
	}
	fmt.Fprintf(os.Stderr, "patternforge: %v\n", err)
	if ae, ok := err.(*AssembleError); ok {
		for k, v := range ae.Context {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", k, v)
		}
	}
	h.exit(1)
}

// SetExit overrides process termination; test hook.
func (h *Handler) SetExit(fn func(int)) { h.exit = fn }
