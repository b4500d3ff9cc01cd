package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostbo/uci-engine-sdk-go/internal/errors"
)

// writeFakeBinary creates an executable file posing as an engine binary.
func writeFakeBinary(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755)
	require.NoError(t, err)

	return path
}

// TestDiscoverer_NotFound tests that an invalid engine path returns EngineNotFoundError.
func TestDiscoverer_NotFound(t *testing.T) {
	discoverer := NewDiscoverer(&Config{
		EnginePath: "/nonexistent/path/to/stockfish",
		Logger:     slog.Default(),
	})

	_, err := discoverer.Discover(context.Background())

	require.Error(t, err)
	require.IsType(t, &errors.EngineNotFoundError{}, err)
}

// TestDiscoverer_ExplicitPath tests discovery with an explicit path.
func TestDiscoverer_ExplicitPath(t *testing.T) {
	fakeEngine := writeFakeBinary(t, "stockfish")

	discoverer := NewDiscoverer(&Config{
		EnginePath: fakeEngine,
		Logger:     slog.Default(),
	})

	path, err := discoverer.Discover(context.Background())

	require.NoError(t, err)
	require.Equal(t, fakeEngine, path)
}

// TestDiscoverer_ExplicitPathWinsOverEnv tests that Config.EnginePath takes
// precedence over the UCI_ENGINE_PATH environment variable.
func TestDiscoverer_ExplicitPathWinsOverEnv(t *testing.T) {
	fromConfig := writeFakeBinary(t, "config-engine")
	fromEnv := writeFakeBinary(t, "env-engine")

	t.Setenv(EnginePathEnvVar, fromEnv)

	discoverer := NewDiscoverer(&Config{
		EnginePath: fromConfig,
		Logger:     slog.Default(),
	})

	path, err := discoverer.Discover(context.Background())

	require.NoError(t, err)
	require.Equal(t, fromConfig, path)
}

// TestDiscoverer_EnvVar tests discovery through UCI_ENGINE_PATH.
func TestDiscoverer_EnvVar(t *testing.T) {
	fakeEngine := writeFakeBinary(t, "env-engine")

	t.Setenv(EnginePathEnvVar, fakeEngine)

	discoverer := NewDiscoverer(&Config{Logger: slog.Default()})

	path, err := discoverer.Discover(context.Background())

	require.NoError(t, err)
	require.Equal(t, fakeEngine, path)
}

// TestDiscoverer_EnvVarInvalidFailsHard tests that a bad UCI_ENGINE_PATH is
// an error rather than falling through to the PATH search.
func TestDiscoverer_EnvVarInvalidFailsHard(t *testing.T) {
	t.Setenv(EnginePathEnvVar, "/nonexistent/engine/binary")

	discoverer := NewDiscoverer(&Config{Logger: slog.Default()})

	_, err := discoverer.Discover(context.Background())

	require.Error(t, err)

	var notFound *errors.EngineNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, []string{"/nonexistent/engine/binary"}, notFound.SearchedPaths)
}

// TestDiscoverer_PathSearch tests the PATH search for well-known engine names.
func TestDiscoverer_PathSearch(t *testing.T) {
	dir := filepath.Dir(writeFakeBinary(t, "stockfish"))

	t.Setenv(EnginePathEnvVar, "")
	t.Setenv("PATH", dir)

	discoverer := NewDiscoverer(&Config{Logger: slog.Default()})

	path, err := discoverer.Discover(context.Background())

	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "stockfish"), path)
}

// TestDiscoverer_NotFoundReportsSearchedPaths tests that the error carries
// everywhere discovery looked.
func TestDiscoverer_NotFoundReportsSearchedPaths(t *testing.T) {
	t.Setenv(EnginePathEnvVar, "")
	t.Setenv("PATH", t.TempDir())

	discoverer := NewDiscoverer(&Config{Logger: slog.Default()})

	path, err := discoverer.Discover(context.Background())
	if err == nil {
		// Common install locations are outside the test's control.
		t.Skipf("engine installed at %s, cannot exercise exhaustion", path)
	}

	var notFound *errors.EngineNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Contains(t, notFound.SearchedPaths, "$PATH/stockfish")
	require.Contains(t, notFound.SearchedPaths, "/usr/games/stockfish")
}

// TestDiscoverer_CancelledContext tests that a cancelled context aborts discovery.
func TestDiscoverer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	discoverer := NewDiscoverer(&Config{Logger: slog.Default()})

	_, err := discoverer.Discover(ctx)

	require.ErrorIs(t, err, context.Canceled)
}

// TestNewDiscoverer_NilConfig tests that a nil config yields a working discoverer.
func TestNewDiscoverer_NilConfig(t *testing.T) {
	discoverer := NewDiscoverer(nil)
	require.NotNil(t, discoverer)
}
