// Package subprocess provides subprocess-based transport for UCI engines.
//
// This package implements the Transport interface by spawning a chess
// engine as a child process and exchanging newline-terminated protocol
// lines over its stdin/stdout. It handles process lifecycle management,
// line buffering, and graceful shutdown via the quit command.
package subprocess
