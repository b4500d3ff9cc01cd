// Package config provides configuration types for the UCI engine SDK.
package config

import (
	"context"
	"iter"
)

// Transport defines the interface for engine process communication.
// Implement this to provide custom transports for testing, mocking,
// or alternative communication methods (e.g., remote engines).
//
// The default implementation spawns a subprocess and speaks
// newline-terminated lines over its stdin/stdout.
// Custom transports can be injected via Options.Transport.
type Transport interface {
	// Start launches the engine and prepares the pipes.
	// It is called exactly once, before any line is exchanged.
	Start(ctx context.Context) error

	// WriteLine sends one protocol line to the engine, appending the
	// trailing newline if absent. Safe for concurrent use.
	WriteLine(ctx context.Context, line string) error

	// ReadLine blocks until the next line arrives, with trailing
	// whitespace stripped. Returns io.EOF when the stream ends.
	ReadLine(ctx context.Context) (string, error)

	// ReadUntil returns a lazy, finite, non-restartable sequence of
	// lines, inclusive of and terminating at the first line satisfying
	// match. If the stream ends first, the sequence ends without the
	// predicate having been satisfied.
	ReadUntil(ctx context.Context, match func(string) bool) iter.Seq2[string, error]

	// Close quits the engine, waits for process exit, and releases
	// resources. Safe to call multiple times.
	Close() error
}
