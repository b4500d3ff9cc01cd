package ucisdk

import (
	"context"
)

// Analyze runs a single search against a freshly started engine and blocks
// until the result is in.
//
// It is the one-shot counterpart to Engine: it launches the engine,
// performs the handshake, runs exactly one search, waits for its bestmove,
// and closes the engine again. The returned Search is already finished;
// Info, BestMove, and Result read buffered state and stay valid after the
// engine process is gone.
//
// By default, logging is disabled. Use WithLogger to enable logging.
//
// Example usage:
//
//	search, err := ucisdk.Analyze(ctx,
//	    ucisdk.FENPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"),
//	    ucisdk.SearchConfig{Depth: 18},
//	    ucisdk.WithEnginePath("/usr/local/bin/stockfish"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	move, ponder, ok := search.BestMove()
//
// Cancelling ctx while the search runs shuts the engine down and returns
// the context's error. A search that ends without producing a bestmove
// (for example because the engine crashed) returns ErrSearchAborted.
//
// For progress streaming while the search runs, or for several searches
// against one engine process, use Engine with Search.Lines or InfoLines
// instead.
func Analyze(
	ctx context.Context,
	position Position,
	config SearchConfig,
	opts ...Option,
) (*Search, error) {
	engine := NewEngine()
	defer engine.Close()

	if err := engine.Start(ctx, opts...); err != nil {
		return nil, err
	}

	search, err := engine.Search(ctx, position, config)
	if err != nil {
		return nil, err
	}

	if err := search.WaitDone(ctx); err != nil {
		return nil, err
	}

	if _, ok := search.Result(); !ok {
		return nil, ErrSearchAborted
	}

	return search, nil
}
