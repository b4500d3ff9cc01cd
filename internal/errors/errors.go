package errors

import (
	"errors"
	"fmt"
)

// EngineError is the base interface for all SDK errors.
type EngineError interface {
	error
	IsUCIEngineError() bool
}

// Compile-time verification that all error types implement EngineError.
var (
	_ EngineError = (*EngineNotFoundError)(nil)
	_ EngineError = (*ProcessSpawnError)(nil)
	_ EngineError = (*TransportClosedError)(nil)
	_ EngineError = (*MalformedOptionError)(nil)
	_ EngineError = (*UnknownOptionError)(nil)
	_ EngineError = (*InvalidOptionValueError)(nil)
	_ EngineError = (*InvalidPositionError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrEngineNotStarted indicates the engine has not been started.
	ErrEngineNotStarted = errors.New("engine not started")

	// ErrEngineAlreadyStarted indicates Start was called on a running engine.
	ErrEngineAlreadyStarted = errors.New("engine already started")

	// ErrEngineClosed indicates the engine has been closed and cannot be reused.
	ErrEngineClosed = errors.New("engine closed: engines are single-use, create a new one with NewEngine()")

	// ErrNotInitialized indicates the UCI handshake has not completed.
	ErrNotInitialized = errors.New("session not initialized")

	// ErrTransportAlreadyStarted indicates Start was called twice on a transport.
	ErrTransportAlreadyStarted = errors.New("transport already started")

	// ErrSearchAborted indicates a search ended without producing a result,
	// typically because the engine process died or closed its pipes.
	ErrSearchAborted = errors.New("search ended without a result")
)

// EngineNotFoundError indicates no UCI engine binary was found.
type EngineNotFoundError struct {
	SearchedPaths []string
}

func (e *EngineNotFoundError) Error() string {
	return fmt.Sprintf("UCI engine not found in: %v", e.SearchedPaths)
}

// IsUCIEngineError implements EngineError.
func (e *EngineNotFoundError) IsUCIEngineError() bool { return true }

// ProcessSpawnError indicates the engine process could not be launched.
type ProcessSpawnError struct {
	Path string
	Err  error
}

func (e *ProcessSpawnError) Error() string {
	return fmt.Sprintf("failed to spawn engine process %q: %v", e.Path, e.Err)
}

func (e *ProcessSpawnError) Unwrap() error {
	return e.Err
}

// IsUCIEngineError implements EngineError.
func (e *ProcessSpawnError) IsUCIEngineError() bool { return true }

// TransportClosedError indicates an operation on a closed or dead transport,
// including a line stream that ended before an expected protocol marker.
type TransportClosedError struct {
	Err error
}

func (e *TransportClosedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("engine transport closed: %v", e.Err)
	}

	return "engine transport closed"
}

func (e *TransportClosedError) Unwrap() error {
	return e.Err
}

// IsUCIEngineError implements EngineError.
func (e *TransportClosedError) IsUCIEngineError() bool { return true }

// MalformedOptionError indicates an advertised option line matched the option
// grammar but its type-specific payload did not.
type MalformedOptionError struct {
	Line   string
	Reason string
}

func (e *MalformedOptionError) Error() string {
	return fmt.Sprintf("malformed option advertisement %q: %s", e.Line, e.Reason)
}

// IsUCIEngineError implements EngineError.
func (e *MalformedOptionError) IsUCIEngineError() bool { return true }

// UnknownOptionError indicates an option name the engine never advertised.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("engine does not advertise option %q", e.Name)
}

// IsUCIEngineError implements EngineError.
func (e *UnknownOptionError) IsUCIEngineError() bool { return true }

// InvalidOptionValueError indicates a value that fails the advertised option's
// type, range, or enumeration constraints.
type InvalidOptionValueError struct {
	Option string
	Value  any
	Reason string
}

func (e *InvalidOptionValueError) Error() string {
	return fmt.Sprintf("invalid value %v for option %q: %s", e.Value, e.Option, e.Reason)
}

// IsUCIEngineError implements EngineError.
func (e *InvalidOptionValueError) IsUCIEngineError() bool { return true }

// InvalidPositionError indicates a Position carrying both or neither of a FEN
// string and a move list, where exactly one is required.
type InvalidPositionError struct {
	Reason string
}

func (e *InvalidPositionError) Error() string {
	return "invalid position: " + e.Reason
}

// IsUCIEngineError implements EngineError.
func (e *InvalidPositionError) IsUCIEngineError() bool { return true }
