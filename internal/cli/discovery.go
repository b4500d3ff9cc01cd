package cli

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ostbo/uci-engine-sdk-go/internal/errors"
)

// EnginePathEnvVar names an engine binary explicitly, overriding the
// built-in search but not an explicit Config.EnginePath.
const EnginePathEnvVar = "UCI_ENGINE_PATH"

// engineNames are the well-known UCI engine binaries searched in PATH,
// in preference order.
var engineNames = []string{"stockfish", "lc0"}

// Config holds configuration for engine discovery.
type Config struct {
	// EnginePath is an explicit engine path that skips all searching.
	// If empty, discovery consults UCI_ENGINE_PATH, then PATH, then
	// common install locations.
	EnginePath string

	// Logger is an optional logger for discovery operations.
	// If nil, a default no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates a UCI engine binary.
type Discoverer interface {
	// Discover locates a UCI engine binary and returns its path.
	Discover(ctx context.Context) (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new engine discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates a UCI engine binary.
//
// An explicit path (Config.EnginePath, then the UCI_ENGINE_PATH environment
// variable) is used as-is and never falls through to searching: a bad
// explicit path is an error, not a reason to quietly run a different engine.
func (d *discoverer) Discover(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	d.log.Debug("Discovering UCI engine binary")

	enginePath, err := d.findEngine()
	if err != nil {
		d.log.Error("Failed to find UCI engine", "error", err)

		return "", err
	}

	d.log.Debug("Found UCI engine binary", "engine_path", enginePath)

	return enginePath, nil
}

// findEngine locates the engine binary.
func (d *discoverer) findEngine() (string, error) {
	// If explicit path provided, use it and only it
	if d.cfg.EnginePath != "" {
		d.log.Debug("Using explicit engine path", "engine_path", d.cfg.EnginePath)

		if _, err := os.Stat(d.cfg.EnginePath); err == nil {
			return d.cfg.EnginePath, nil
		}

		d.log.Debug("Explicit engine path not found", "engine_path", d.cfg.EnginePath)

		return "", &errors.EngineNotFoundError{SearchedPaths: []string{d.cfg.EnginePath}}
	}

	// Same rule for the environment variable
	if envPath := os.Getenv(EnginePathEnvVar); envPath != "" {
		d.log.Debug("Using engine path from environment", "engine_path", envPath)

		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}

		d.log.Debug("Environment engine path not found", "engine_path", envPath)

		return "", &errors.EngineNotFoundError{SearchedPaths: []string{envPath}}
	}

	searchedPaths := make([]string, 0, 8)

	// Search well-known engine names in PATH
	for _, name := range engineNames {
		d.log.Debug("Searching for engine in PATH", "name", name)

		if path, err := exec.LookPath(name); err == nil {
			d.log.Debug("Found engine in PATH", "name", name, "path", path)

			return path, nil
		}

		searchedPaths = append(searchedPaths, "$PATH/"+name)
	}

	// Check common locations
	commonPaths := []string{
		"/usr/local/bin/stockfish",
		"/usr/bin/stockfish",
		"/usr/games/stockfish",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths, filepath.Join(homeDir, ".local/bin/stockfish"))
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found engine at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("UCI engine not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.EngineNotFoundError{SearchedPaths: searchedPaths}
}
