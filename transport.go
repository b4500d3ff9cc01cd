package ucisdk

import "github.com/ostbo/uci-engine-sdk-go/internal/config"

// Transport defines the interface for engine communication.
// Implement this to provide custom transports for testing, mocking,
// or alternative communication methods (e.g., remote engines).
//
// The default implementation spawns the engine as a subprocess and speaks
// newline-terminated UCI lines over its stdin/stdout.
// Custom transports can be injected via WithTransport.
type Transport = config.Transport
