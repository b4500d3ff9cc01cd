package ucisdk

import "github.com/ostbo/uci-engine-sdk-go/internal/errors"

// Re-export error types from internal package

// EngineNotFoundError indicates no UCI engine binary was found.
type EngineNotFoundError = errors.EngineNotFoundError

// ProcessSpawnError indicates the engine process failed to launch.
type ProcessSpawnError = errors.ProcessSpawnError

// TransportClosedError indicates the engine stream ended mid-operation.
type TransportClosedError = errors.TransportClosedError

// MalformedOptionError indicates a handshake option line could not be parsed.
type MalformedOptionError = errors.MalformedOptionError

// UnknownOptionError indicates an option name the engine never advertised.
type UnknownOptionError = errors.UnknownOptionError

// InvalidOptionValueError indicates an option value that fails validation.
type InvalidOptionValueError = errors.InvalidOptionValueError

// InvalidPositionError indicates a Position with both or neither of FEN
// and moves set.
type InvalidPositionError = errors.InvalidPositionError

// EngineError is the base interface for all SDK errors.
type EngineError = errors.EngineError

// Re-export sentinel errors from internal package.
var (
	// ErrEngineNotStarted indicates the engine has not been started.
	ErrEngineNotStarted = errors.ErrEngineNotStarted

	// ErrEngineAlreadyStarted indicates the engine is already running.
	ErrEngineAlreadyStarted = errors.ErrEngineAlreadyStarted

	// ErrTransportAlreadyStarted indicates Start was called twice on a
	// transport. Custom Transport implementations should return it too.
	ErrTransportAlreadyStarted = errors.ErrTransportAlreadyStarted

	// ErrEngineClosed indicates the engine has been closed and cannot be reused.
	ErrEngineClosed = errors.ErrEngineClosed

	// ErrNotInitialized indicates the UCI handshake has not completed.
	ErrNotInitialized = errors.ErrNotInitialized

	// ErrSearchAborted indicates a search ended without producing a result.
	ErrSearchAborted = errors.ErrSearchAborted
)
