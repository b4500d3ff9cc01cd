package ucisdk

import (
	"context"
	"fmt"
)

// WithEngine manages engine lifecycle with automatic cleanup.
//
// This helper creates an engine, starts it with the provided options,
// executes the callback function, and ensures proper cleanup via Close()
// when done.
//
// The callback receives a fully started Engine that has completed its
// handshake. If the callback returns an error, it is returned to the
// caller. If Close() fails, a warning is logged but does not override the
// callback's error.
//
// Example usage:
//
//	err := ucisdk.WithEngine(ctx, func(e ucisdk.Engine) error {
//	    search, err := e.Search(ctx, ucisdk.MovesPosition("e2e4"), ucisdk.SearchConfig{Depth: 15})
//	    if err != nil {
//	        return err
//	    }
//	    if err := search.WaitDone(ctx); err != nil {
//	        return err
//	    }
//	    move, _, _ := search.BestMove()
//	    fmt.Println("best move:", move)
//	    return nil
//	},
//	    ucisdk.WithEnginePath("/usr/local/bin/stockfish"),
//	    ucisdk.WithLogger(log),
//	)
func WithEngine(ctx context.Context, fn func(Engine) error, opts ...Option) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := applyEngineOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	engine := NewEngine()
	if err := engine.Start(ctx, opts...); err != nil {
		return fmt.Errorf("failed to start engine: %w", err)
	}

	defer func() {
		if closeErr := engine.Close(); closeErr != nil {
			log.Warn("failed to close engine", "error", closeErr)
		}
	}()

	return fn(engine)
}
