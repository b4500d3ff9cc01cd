// Package ucisdk provides a Go SDK for driving UCI chess engines.
//
// This SDK enables Go applications to control any engine speaking the
// Universal Chess Interface (Stockfish, Lc0, and others) as a long-lived
// subprocess. It supports both one-shot position analysis and interactive
// sessions with many searches against one engine process.
//
// # Basic Usage
//
// For simple, one-shot analysis, use the Analyze function:
//
//	ctx := context.Background()
//	search, err := ucisdk.Analyze(ctx,
//	    ucisdk.MovesPosition("e2e4", "e7e5"),
//	    ucisdk.SearchConfig{Depth: 18},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	move, ponder, _ := search.BestMove()
//	fmt.Printf("best %s (ponder %s)\n", move, ponder)
//
//	if info, ok := ucisdk.LastInfo(search); ok && info.ScoreCP != nil {
//	    fmt.Printf("depth %d score cp %d\n", info.Depth, *info.ScoreCP)
//	}
//
// # Interactive Sessions
//
// For several searches against one engine process, use NewEngine or the
// WithEngine helper:
//
//	// Using WithEngine for automatic lifecycle management
//	err := ucisdk.WithEngine(ctx, func(e ucisdk.Engine) error {
//	    if err := e.SetOptions(ctx, ucisdk.OptionValue{Name: "Hash", Value: 256}); err != nil {
//	        return err
//	    }
//	    search, err := e.Search(ctx, ucisdk.FENPosition(fen), ucisdk.SearchConfig{MoveTime: 2000})
//	    if err != nil {
//	        return err
//	    }
//	    return search.WaitDone(ctx)
//	},
//	    ucisdk.WithEnginePath("/usr/local/bin/stockfish"),
//	)
//
//	// Or using NewEngine directly for more control
//	engine := ucisdk.NewEngine()
//	defer engine.Close()
//
//	err := engine.Start(ctx,
//	    ucisdk.WithEnginePath("/usr/local/bin/stockfish"),
//	    ucisdk.WithLogger(slog.Default()),
//	)
//
// # Streaming Search Progress
//
// Searches report progress asynchronously. Search.Lines yields the raw
// engine lines; InfoLines decodes them:
//
//	search, err := engine.Search(ctx, position, ucisdk.SearchConfig{Infinite: true})
//	if err != nil {
//	    return err
//	}
//
//	go func() {
//	    time.Sleep(5 * time.Second)
//	    search.Stop(context.Background())
//	}()
//
//	for info, err := range ucisdk.InfoLines(ctx, search) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("depth %d nodes %d\n", info.Depth, info.Nodes)
//	}
//
//	move, _, _ := search.BestMove()
//
// # Logging
//
// For detailed operation tracking, use WithLogger; for raw protocol
// traffic, add a line observer:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	err := engine.Start(ctx,
//	    ucisdk.WithLogger(logger),
//	    ucisdk.WithLineObserver(func(dir ucisdk.LineDirection, line string) {
//	        fmt.Printf("%s %s\n", dir, line)
//	    }),
//	)
//
// # Error Handling
//
// The SDK provides typed errors for different failure scenarios:
//
//	search, err := ucisdk.Analyze(ctx, position, config)
//	if err != nil {
//	    if nfErr, ok := errors.AsType[*ucisdk.EngineNotFoundError](err); ok {
//	        log.Fatalf("no UCI engine installed, searched: %v", nfErr.SearchedPaths)
//	    }
//	    if optErr, ok := errors.AsType[*ucisdk.InvalidOptionValueError](err); ok {
//	        log.Fatalf("bad option %s: %s", optErr.Option, optErr.Reason)
//	    }
//	    log.Fatal(err)
//	}
//
// # Requirements
//
// This SDK requires a UCI engine binary to be installed. Engines are
// located via the UCI_ENGINE_PATH environment variable, the system PATH,
// and common install locations; use WithEnginePath to point at a specific
// binary.
package ucisdk
