package ucisdk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEngineNotFoundError_Creation tests EngineNotFoundError creation and formatting.
func TestEngineNotFoundError_Creation(t *testing.T) {
	searchedPaths := []string{
		"$UCI_ENGINE_PATH",
		"$PATH",
		"/usr/local/bin/stockfish",
	}
	err := &EngineNotFoundError{
		SearchedPaths: searchedPaths,
	}

	require.Error(t, err)
	require.Contains(t, err.Error(), "UCI engine not found")
	require.Contains(t, err.Error(), "$PATH")
	require.Contains(t, err.Error(), "/usr/local/bin/stockfish")
}

// TestProcessSpawnError_Creation tests ProcessSpawnError creation and formatting.
func TestProcessSpawnError_Creation(t *testing.T) {
	innerErr := fmt.Errorf("permission denied")
	err := &ProcessSpawnError{
		Path: "/opt/engines/stockfish",
		Err:  innerErr,
	}

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to spawn engine process")
	require.Contains(t, err.Error(), "/opt/engines/stockfish")
	require.Contains(t, err.Error(), "permission denied")
}

// TestProcessSpawnError_Unwrap tests that the underlying error can be unwrapped.
func TestProcessSpawnError_Unwrap(t *testing.T) {
	innerErr := fmt.Errorf("no such file")
	err := &ProcessSpawnError{
		Path: "/missing/engine",
		Err:  innerErr,
	}

	require.ErrorIs(t, err, innerErr)
}

// TestTransportClosedError_Creation tests TransportClosedError creation and formatting.
func TestTransportClosedError_Creation(t *testing.T) {
	innerErr := fmt.Errorf("broken pipe")
	err := &TransportClosedError{
		Err: innerErr,
	}

	require.Error(t, err)
	require.Contains(t, err.Error(), "engine transport closed")
	require.Contains(t, err.Error(), "broken pipe")
	require.ErrorIs(t, err, innerErr)
}

// TestTransportClosedError_NoCause tests formatting without an inner error.
func TestTransportClosedError_NoCause(t *testing.T) {
	err := &TransportClosedError{}

	require.Error(t, err)
	require.Equal(t, "engine transport closed", err.Error())
}

// TestMalformedOptionError_Creation tests MalformedOptionError creation and formatting.
func TestMalformedOptionError_Creation(t *testing.T) {
	err := &MalformedOptionError{
		Line:   "option name Hash type spin default x min 1 max 10",
		Reason: "default is not an integer",
	}

	require.Error(t, err)
	require.Contains(t, err.Error(), "malformed option advertisement")
	require.Contains(t, err.Error(), "default is not an integer")
}

// TestUnknownOptionError_Creation tests UnknownOptionError creation and formatting.
func TestUnknownOptionError_Creation(t *testing.T) {
	err := &UnknownOptionError{
		Name: "Hassh",
	}

	require.Error(t, err)
	require.Contains(t, err.Error(), "does not advertise option")
	require.Contains(t, err.Error(), "Hassh")
}

// TestInvalidOptionValueError_Creation tests InvalidOptionValueError creation and formatting.
func TestInvalidOptionValueError_Creation(t *testing.T) {
	err := &InvalidOptionValueError{
		Option: "Hash",
		Value:  99999999,
		Reason: "above maximum 33554432",
	}

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid value")
	require.Contains(t, err.Error(), "Hash")
	require.Contains(t, err.Error(), "above maximum")
}

// TestInvalidPositionError_Creation tests InvalidPositionError creation and formatting.
func TestInvalidPositionError_Creation(t *testing.T) {
	err := &InvalidPositionError{
		Reason: "both fen and moves supplied",
	}

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid position")
	require.Contains(t, err.Error(), "both fen and moves supplied")
}

// TestEngineError_Interface tests that typed errors satisfy the EngineError interface.
func TestEngineError_Interface(t *testing.T) {
	typed := []EngineError{
		&EngineNotFoundError{},
		&ProcessSpawnError{},
		&TransportClosedError{},
		&MalformedOptionError{},
		&UnknownOptionError{},
		&InvalidOptionValueError{},
		&InvalidPositionError{},
	}

	for _, err := range typed {
		require.True(t, err.IsUCIEngineError())
	}
}
