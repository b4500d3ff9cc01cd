// Package uci provides the wire-level vocabulary of the Universal Chess
// Interface protocol: command rendering, marker recognition, option
// advertisement parsing, option value formatting, and search argument
// rendering.
//
// Everything in this package is a pure function over strings and value
// types; the stateful session machinery lives in internal/protocol.
package uci
