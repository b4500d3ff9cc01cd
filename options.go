package ucisdk

import (
	"log/slog"

	"github.com/ostbo/uci-engine-sdk-go/internal/config"
)

// Option configures EngineOptions using the functional options pattern.
// This is the primary option type for configuring engines.
type Option func(*EngineOptions)

// applyEngineOptions applies functional options to an EngineOptions struct.
func applyEngineOptions(opts []Option) *EngineOptions {
	options := &EngineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *EngineOptions) {
		o.Logger = logger
	}
}

// WithEnginePath sets the explicit path to the UCI engine binary.
// If not set, well-known engines are searched via the UCI_ENGINE_PATH
// environment variable, PATH, and common install locations.
func WithEnginePath(path string) Option {
	return func(o *EngineOptions) {
		o.EnginePath = path
	}
}

// WithLineObserver registers a callback invoked for every protocol line
// crossing the wire, in both directions. Useful for protocol tracing.
// The observer runs synchronously on the transport's goroutines, so it
// must return quickly and must not call back into the engine.
func WithLineObserver(observer LineObserver) Option {
	return func(o *EngineOptions) {
		o.Observer = observer
	}
}

// WithDebug asks the engine to switch on its debug mode ("debug on")
// right after the handshake completes.
func WithDebug(debug bool) Option {
	return func(o *EngineOptions) {
		o.Debug = debug
	}
}

// WithTransport injects a custom transport implementation.
// The transport must implement the Transport interface.
func WithTransport(transport config.Transport) Option {
	return func(o *EngineOptions) {
		o.Transport = transport
	}
}
