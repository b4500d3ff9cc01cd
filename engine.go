package ucisdk

import (
	"context"
)

// Engine provides a stateful session with a UCI chess engine.
//
// An Engine wraps one long-lived engine process. Commands are sent over
// its stdin and answered on its stdout; search results (info lines and
// the final bestmove) arrive asynchronously and are exposed through the
// Search handle rather than through command return values.
//
// At most one search runs at a time. Starting a new search, changing
// options, or announcing a new game while a search is running first stops
// it and waits for its bestmove, so engine output can never be attributed
// to the wrong search.
//
// Lifecycle: Engines are single-use. After Close(), create a new engine
// with NewEngine().
//
// Example usage:
//
//	engine := NewEngine()
//	defer engine.Close()
//
//	err := engine.Start(ctx,
//	    WithEnginePath("/usr/local/bin/stockfish"),
//	    WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Configure the engine
//	err = engine.SetOptions(ctx, OptionValue{Name: "Hash", Value: 256})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Start a search and stream its progress
//	search, err := engine.Search(ctx, FENPosition(fen), SearchConfig{Depth: 20})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for line, err := range search.Lines(ctx) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Process raw engine line...
//	}
//
//	move, ponder, ok := search.BestMove()
type Engine interface {
	// Start launches the engine process (or adopts an injected transport)
	// and performs the UCI handshake. Must be called before any other
	// method. Returns EngineNotFoundError when no engine binary can be
	// located and ProcessSpawnError when it fails to launch.
	Start(ctx context.Context, opts ...Option) error

	// EngineID returns the name and author the engine reported during
	// the handshake. Both are empty before Start.
	EngineID() (name, author string)

	// Options returns the option descriptors the engine advertised,
	// keyed by lowercased option name. The returned map is a copy.
	Options() map[string]OptionDescriptor

	// Descriptor returns the advertised descriptor for name, looked up
	// case-insensitively.
	Descriptor(name string) (OptionDescriptor, bool)

	// AppliedOptions returns the option values sent to the engine so
	// far, keyed by the engine's canonical option name. The returned map
	// is a copy.
	AppliedOptions() map[string]string

	// SetOptions validates and applies option values in order, stopping
	// any running search first. A failure mid-sequence leaves the values
	// already sent in effect on the engine; there is no rollback.
	SetOptions(ctx context.Context, values ...OptionValue) error

	// NewGame tells the engine the next search belongs to a fresh game,
	// letting it clear game-specific state such as hash tables. Any
	// running search is stopped and drained first.
	NewGame(ctx context.Context) error

	// Debug toggles the engine's debug mode. Extra output the engine
	// produces in debug mode is visible through a LineObserver.
	Debug(ctx context.Context, enable bool) error

	// Search starts a search from position and returns its live handle.
	// Any running search is stopped and drained first. The search runs
	// until the engine concludes it, Stop is called, or the limits in
	// config are exhausted.
	Search(ctx context.Context, position Position, config SearchConfig) (*Search, error)

	// ActiveSearch returns the running search, or nil when the engine
	// is idle.
	ActiveSearch() *Search

	// PonderHit tells the engine the move it is pondering on was played.
	// The current search continues as a normal search and delivers its
	// bestmove through the same Search handle.
	PonderHit(ctx context.Context) error

	// Stop cancels the active search and waits for its bestmove to
	// drain. Stopping an idle engine is a no-op.
	Stop(ctx context.Context) error

	// Close stops any running search, quits the engine process, and
	// releases resources. After Close(), the engine cannot be reused.
	// Safe to call multiple times.
	Close() error
}

// NewEngine creates a new engine session.
//
// Call Start() with options to launch the engine:
//
//	engine := NewEngine()
//	err := engine.Start(ctx,
//	    WithEnginePath("/usr/local/bin/stockfish"),
//	    WithLogger(slog.Default()),
//	)
func NewEngine() Engine {
	return newEngineImpl()
}
