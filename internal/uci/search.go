package uci

import (
	"strconv"
	"strings"

	"github.com/ostbo/uci-engine-sdk-go/internal/errors"
)

// Position identifies the position a search starts from: either a full FEN
// string or a move sequence played out from the standard starting position.
// Exactly one of the two must be set.
type Position struct {
	FEN   string
	Moves []string
}

// FENPosition builds a Position from a FEN string.
func FENPosition(fen string) Position {
	return Position{FEN: fen}
}

// MovesPosition builds a Position from moves played from the starting
// position, in long algebraic notation (e.g. "e2e4").
func MovesPosition(moves ...string) Position {
	return Position{Moves: moves}
}

// Validate checks the exactly-one-of-FEN-and-moves invariant.
func (p Position) Validate() error {
	switch {
	case p.FEN != "" && len(p.Moves) > 0:
		return &errors.InvalidPositionError{Reason: "both fen and moves supplied"}
	case p.FEN == "" && len(p.Moves) == 0:
		return &errors.InvalidPositionError{Reason: "neither fen nor moves supplied"}
	default:
		return nil
	}
}

// Command renders the position command. Callers must Validate first.
func (p Position) Command() string {
	if p.FEN != "" {
		return "position fen " + p.FEN
	}

	return "position startpos moves " + strings.Join(p.Moves, " ")
}

// SearchConfig is a pure value bag of search limits. Zero-valued fields are
// omitted from the rendered command. Time fields are milliseconds.
type SearchConfig struct {
	// WTime and BTime are the clocks remaining per side.
	WTime int
	BTime int

	// WInc and BInc are the per-move increments.
	WInc int
	BInc int

	// MovesToGo is the number of moves to the next time control.
	MovesToGo int

	// Depth limits the search to a ply count.
	Depth int

	// Nodes limits the search to a node count.
	Nodes int

	// Mate asks for a mate in the given number of moves.
	Mate int

	// MoveTime fixes the time spent on this search.
	MoveTime int

	// Ponder starts the search in ponder mode.
	Ponder bool

	// Infinite searches until stopped.
	Infinite bool

	// SearchMoves restricts the search to these root moves.
	SearchMoves []string
}

// GoArguments renders the config into protocol tokens in the protocol's
// fixed field order: the numeric limits, then the ponder and infinite
// flags, then searchmoves last.
func (c SearchConfig) GoArguments() []string {
	args := make([]string, 0, 8)

	numeric := []struct {
		name  string
		value int
	}{
		{"wtime", c.WTime},
		{"btime", c.BTime},
		{"winc", c.WInc},
		{"binc", c.BInc},
		{"movestogo", c.MovesToGo},
		{"depth", c.Depth},
		{"nodes", c.Nodes},
		{"mate", c.Mate},
		{"movetime", c.MoveTime},
	}

	for _, f := range numeric {
		if f.value != 0 {
			args = append(args, f.name, strconv.Itoa(f.value))
		}
	}

	if c.Ponder {
		args = append(args, "ponder")
	}

	if c.Infinite {
		args = append(args, "infinite")
	}

	if len(c.SearchMoves) > 0 {
		args = append(args, "searchmoves")
		args = append(args, c.SearchMoves...)
	}

	return args
}

// GoCommand renders the full go command for this config.
func (c SearchConfig) GoCommand() string {
	args := c.GoArguments()
	if len(args) == 0 {
		return "go"
	}

	return "go " + strings.Join(args, " ")
}
