// Package protocol implements the UCI session state machine on top of a
// line transport.
//
// The protocol has an asymmetric shape: commands flow in synchronously,
// while search output streams back asynchronously. Session serializes the
// commands and pairs each search with a dedicated reader goroutine that
// feeds a Search handle until the engine's bestmove arrives.
//
// The package enforces the protocol's central invariant: at most one
// search runs at a time. Starting a search, changing options, or signaling
// a new game first passes a stop barrier that cancels and fully drains the
// previous search, so no reader goroutine ever competes for the transport.
//
// Example usage:
//
//	session := protocol.NewSession(log, transport)
//	if err := session.Initialize(ctx); err != nil { ... }
//
//	search, err := session.Search(ctx, uci.FENPosition(fen), uci.SearchConfig{Depth: 12})
//	if err != nil { ... }
//
//	if err := search.WaitDone(ctx); err != nil { ... }
//	move, ponder, ok := search.BestMove()
package protocol
