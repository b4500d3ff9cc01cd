// Package cli locates UCI engine binaries on the host system.
//
// The Discoverer interface resolves the path of an engine binary:
//
//	discoverer := cli.NewDiscoverer(&cli.Config{
//	    EnginePath: "",           // Optional explicit path
//	    Logger:     slog.Default(),
//	})
//	enginePath, err := discoverer.Discover(ctx)
//
// Discovery searches in the following order:
//  1. Explicit path in Config.EnginePath (if provided)
//  2. The UCI_ENGINE_PATH environment variable
//  3. Well-known engine names (stockfish, lc0) in the system PATH
//  4. Common installation directories (/usr/local/bin, /usr/bin, /usr/games)
//
// No version probe is run: unlike tools with a --version flag, UCI engines
// identify themselves through the protocol handshake after they start.
package cli
