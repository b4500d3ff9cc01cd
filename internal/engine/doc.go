// Package engine assembles and drives one UCI engine session.
//
// The engine package owns everything between the public API and the wire:
// it picks the transport (spawned subprocess or injected), runs the UCI
// handshake through the protocol session, and tracks lifecycle state so
// that commands on an unstarted or closed engine fail with sentinel errors
// instead of touching a dead process.
//
// An Engine is single-use: Start once, drive searches, Close once. The
// protocol package underneath guarantees at most one search is running and
// that stopping one always drains its bestmove.
package engine
