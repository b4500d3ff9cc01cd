package config

import (
	"log/slog"
)

// LineDirection tags a wire line with the side that produced it.
type LineDirection string

const (
	// LineSent marks a line written to the engine's stdin.
	LineSent LineDirection = "send"
	// LineReceived marks a line read from the engine's stdout.
	LineReceived LineDirection = "recv"
)

// LineObserver is invoked for every line crossing the transport, in both
// directions. It runs synchronously on the transport's goroutine, so it must
// return quickly and must not call back into the engine.
type LineObserver func(direction LineDirection, line string)

// Options configures an engine session.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// EnginePath is the explicit path to the UCI engine binary.
	// If empty, well-known engine names are searched in PATH and
	// common install locations.
	EnginePath string

	// Observer is called for every sent and received wire line.
	// If nil, no observation happens.
	Observer LineObserver

	// Debug asks the engine to switch on its debug mode ("debug on")
	// right after the handshake completes.
	Debug bool

	// Transport allows injecting a custom transport implementation.
	// If nil, a subprocess transport is spawned from EnginePath (or
	// from discovery when EnginePath is empty).
	Transport Transport
}
