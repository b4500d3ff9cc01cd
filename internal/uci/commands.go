package uci

import "strings"

// Commands this SDK emits. All are newline-terminated by the transport.
const (
	CommandUCI       = "uci"
	CommandIsReady   = "isready"
	CommandNewGame   = "ucinewgame"
	CommandStop      = "stop"
	CommandPonderHit = "ponderhit"
	CommandQuit      = "quit"
)

// IsUCIOK reports whether line is the handshake-complete marker.
// Matching is prefix-based, as engines are free to append noise.
func IsUCIOK(line string) bool {
	return strings.HasPrefix(line, "uciok")
}

// IsReadyOK reports whether line is the readiness-complete marker.
func IsReadyOK(line string) bool {
	return strings.HasPrefix(line, "readyok")
}

// IsInfo reports whether line is a search progress line.
func IsInfo(line string) bool {
	return strings.HasPrefix(line, "info")
}

// IsBestMove reports whether line is the final result marker of a search.
func IsBestMove(line string) bool {
	return strings.HasPrefix(line, "bestmove")
}

// SetOptionCommand renders a setoption command. A nil value renders the
// valueless form used for action (button) options.
func SetOptionCommand(name string, value *string) string {
	if value == nil {
		return "setoption name " + name
	}

	return "setoption name " + name + " value " + *value
}

// DebugCommand renders the engine debug toggle.
func DebugCommand(on bool) string {
	if on {
		return "debug on"
	}

	return "debug off"
}
