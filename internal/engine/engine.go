package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ostbo/uci-engine-sdk-go/internal/config"
	"github.com/ostbo/uci-engine-sdk-go/internal/errors"
	"github.com/ostbo/uci-engine-sdk-go/internal/protocol"
	"github.com/ostbo/uci-engine-sdk-go/internal/subprocess"
	"github.com/ostbo/uci-engine-sdk-go/internal/uci"
)

// Engine owns one engine process for its whole life: Start launches and
// greets it, the session methods talk to it, Close quits and reaps it.
// Engines are single-use. After Close, create a new one.
type Engine struct {
	log       *slog.Logger
	options   *config.Options
	transport config.Transport
	session   *protocol.Session

	mu      sync.Mutex
	started bool
	closed  bool

	closeOnce sync.Once
}

// New creates a new engine driver.
//
// The engine process is not launched yet. Call Start() with options to
// spawn it and run the UCI handshake.
func New() *Engine {
	return &Engine{}
}

// Start launches the engine process (or adopts an injected transport) and
// performs the UCI handshake. It must be called exactly once, before any
// other method.
func (e *Engine) Start(ctx context.Context, options *config.Options) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return errors.ErrEngineClosed
	}

	if e.started {
		return errors.ErrEngineAlreadyStarted
	}

	if options == nil {
		options = &config.Options{}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e.log = log.With("component", "engine")
	e.options = options

	var transport config.Transport

	if options.Transport != nil {
		transport = options.Transport

		e.log.Debug("Using injected custom transport")
	} else {
		transport = subprocess.NewEngineTransport(e.log, options)
	}

	if err := transport.Start(ctx); err != nil {
		return fmt.Errorf("start transport: %w", err)
	}

	session := protocol.NewSession(e.log, transport)

	if err := session.Initialize(ctx); err != nil {
		transport.Close()

		return fmt.Errorf("initialize session: %w", err)
	}

	if options.Debug {
		if err := session.Debug(ctx, true); err != nil {
			transport.Close()

			return fmt.Errorf("enable debug mode: %w", err)
		}
	}

	e.transport = transport
	e.session = session
	e.started = true

	name, author := session.EngineID()
	e.log.Info("Engine started", "name", name, "author", author)

	return nil
}

// EngineID returns the name and author the engine reported during the
// handshake. Both are empty before Start.
func (e *Engine) EngineID() (name, author string) {
	session := e.getSession()
	if session == nil {
		return "", ""
	}

	return session.EngineID()
}

// Options returns the option descriptors the engine advertised, keyed by
// lowercased option name. The map and its entries are copies.
func (e *Engine) Options() map[string]uci.Descriptor {
	session := e.getSession()
	if session == nil {
		return nil
	}

	advertised := session.Options()

	out := make(map[string]uci.Descriptor, len(advertised))
	for name, desc := range advertised {
		out[name] = *desc
	}

	return out
}

// Descriptor returns the advertised descriptor for name, looked up
// case-insensitively.
func (e *Engine) Descriptor(name string) (uci.Descriptor, bool) {
	session := e.getSession()
	if session == nil {
		return uci.Descriptor{}, false
	}

	desc, ok := session.Descriptor(name)
	if !ok {
		return uci.Descriptor{}, false
	}

	return *desc, true
}

// AppliedOptions returns the option values sent to the engine so far,
// keyed by canonical advertised name.
func (e *Engine) AppliedOptions() map[string]string {
	session := e.getSession()
	if session == nil {
		return nil
	}

	return session.AppliedOptions()
}

// SetOptions validates and applies option values in order, stopping any
// running search first.
func (e *Engine) SetOptions(ctx context.Context, values ...uci.OptionValue) error {
	session, err := e.liveSession()
	if err != nil {
		return err
	}

	return session.SetOptions(ctx, values...)
}

// NewGame tells the engine the next search belongs to a fresh game.
func (e *Engine) NewGame(ctx context.Context) error {
	session, err := e.liveSession()
	if err != nil {
		return err
	}

	return session.NewGame(ctx)
}

// Debug toggles the engine's debug mode.
func (e *Engine) Debug(ctx context.Context, on bool) error {
	session, err := e.liveSession()
	if err != nil {
		return err
	}

	return session.Debug(ctx, on)
}

// Search starts a search from position and returns its live handle. A
// still-running previous search is stopped and drained first.
func (e *Engine) Search(
	ctx context.Context,
	position uci.Position,
	cfg uci.SearchConfig,
) (*protocol.Search, error) {
	session, err := e.liveSession()
	if err != nil {
		return nil, err
	}

	return session.Search(ctx, position, cfg)
}

// ActiveSearch returns the running search, or nil when the engine is idle
// or not started.
func (e *Engine) ActiveSearch() *protocol.Search {
	session := e.getSession()
	if session == nil {
		return nil
	}

	return session.ActiveSearch()
}

// PonderHit tells the engine the move it is pondering on was played.
func (e *Engine) PonderHit(ctx context.Context) error {
	session, err := e.liveSession()
	if err != nil {
		return err
	}

	return session.PonderHit(ctx)
}

// Stop cancels the active search, if any, and waits for its bestmove to
// drain. Stopping an idle engine is a no-op.
func (e *Engine) Stop(ctx context.Context) error {
	session, err := e.liveSession()
	if err != nil {
		return err
	}

	return session.Stop(ctx)
}

// Close stops any running search, quits the engine process, and releases
// resources. It is safe to call multiple times; only the first call does
// the work.
func (e *Engine) Close() error {
	var closeErr error

	e.closeOnce.Do(func() {
		e.mu.Lock()
		e.closed = true
		session := e.session
		transport := e.transport
		e.mu.Unlock()

		switch {
		case session != nil:
			closeErr = session.Close()
		case transport != nil:
			closeErr = transport.Close()
		}

		if e.log != nil {
			e.log.Info("Engine closed")
		}
	})

	return closeErr
}

// isStarted reports whether Start has succeeded and Close has not run.
func (e *Engine) isStarted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.started && !e.closed
}

// getSession returns the session for read-only accessors, or nil when the
// engine never started. Accessors stay usable on a closed engine so final
// state can still be inspected.
func (e *Engine) getSession() *protocol.Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session
}

// liveSession returns the session for command methods, enforcing the
// started-and-not-closed lifecycle.
func (e *Engine) liveSession() (*protocol.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, errors.ErrEngineClosed
	}

	if !e.started {
		return nil, errors.ErrEngineNotStarted
	}

	return e.session, nil
}
