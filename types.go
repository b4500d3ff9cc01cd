package ucisdk

import (
	"github.com/ostbo/uci-engine-sdk-go/internal/config"
	"github.com/ostbo/uci-engine-sdk-go/internal/protocol"
	"github.com/ostbo/uci-engine-sdk-go/internal/uci"
)

// Re-export types from internal packages

// ===== Transport =====

// Transport defines the interface for engine communication.
// Re-exported from internal/config for public API access.
// See transport.go for full documentation.
// type Transport = config.Transport (defined in transport.go)

// ===== Options and Configuration =====

// EngineOptions configures the behavior of an engine session.
type EngineOptions = config.Options

// LineDirection tags an observed wire line with the side that produced it.
type LineDirection = config.LineDirection

const (
	// LineSent marks a line written to the engine's stdin.
	LineSent = config.LineSent
	// LineReceived marks a line read from the engine's stdout.
	LineReceived = config.LineReceived
)

// LineObserver is invoked for every line crossing the transport, in both
// directions.
type LineObserver = config.LineObserver

// ===== Engine Options =====

// OptionType classifies an option advertised by the engine.
type OptionType = uci.OptionType

const (
	// OptionString is free-form text (UCI "string").
	OptionString = uci.OptionString
	// OptionInt is an integer with an inclusive range (UCI "spin").
	OptionInt = uci.OptionInt
	// OptionBool is a boolean toggle (UCI "check").
	OptionBool = uci.OptionBool
	// OptionEnum is one of a fixed value set (UCI "combo").
	OptionEnum = uci.OptionEnum
	// OptionAction is a valueless trigger (UCI "button").
	OptionAction = uci.OptionAction
)

// OptionDescriptor describes one option the engine advertised during the
// handshake, including its type and the constraints values must satisfy.
type OptionDescriptor = uci.Descriptor

// OptionValue names an engine option and the value to apply to it.
// For action options the value must be nil.
type OptionValue = uci.OptionValue

// ===== Positions =====

// Position identifies the position a search starts from: either a full
// FEN string or a move sequence played from the standard starting
// position. Exactly one of the two must be set.
type Position = uci.Position

// FENPosition builds a Position from a FEN string.
var FENPosition = uci.FENPosition

// MovesPosition builds a Position from moves played from the starting
// position, in long algebraic notation (e.g. "e2e4").
var MovesPosition = uci.MovesPosition

// ===== Searches =====

// SearchConfig carries the limits for one search: clocks, depth, nodes,
// movetime, and the ponder/infinite flags. Zero-valued fields are omitted
// from the rendered go command. Time fields are milliseconds.
type SearchConfig = uci.SearchConfig

// Search is the live handle for one engine search. It is created by
// Engine.Search and stays valid after the search finishes, so its final
// state can be inspected at leisure.
type Search = protocol.Search

// Info is the decoded view of one engine progress line: depth, score,
// node counts, and the principal variation. Fields the engine did not
// report stay zero.
type Info = uci.Info

// ParseInfo decodes a raw info line into an Info. It reports false for
// lines that are not info lines.
var ParseInfo = uci.ParseInfo

// ParseBestMove splits a bestmove line into its move and optional ponder
// move. It reports false for lines that are not bestmove lines.
var ParseBestMove = uci.ParseBestMove
