package protocol

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ostbo/uci-engine-sdk-go/internal/errors"
	"github.com/ostbo/uci-engine-sdk-go/internal/uci"
)

const (
	// closeStopTimeout bounds the stop barrier inside Close. Close takes no
	// context and must terminate even against an engine that ignores stop.
	closeStopTimeout = 5 * time.Second

	// idNamePrefix and idAuthorPrefix mark the engine identification lines
	// of the handshake.
	idNamePrefix   = "id name "
	idAuthorPrefix = "id author "
)

// Transport is the line transport the session drives. It is the started
// subset of the full transport contract: the session assumes the engine is
// already running and owns shutdown through Close.
type Transport interface {
	WriteLine(ctx context.Context, line string) error
	ReadLine(ctx context.Context) (string, error)
	ReadUntil(ctx context.Context, match func(string) bool) iter.Seq2[string, error]
	Close() error
}

// Session encapsulates the engine protocol state machine: the handshake,
// option application, and the one-active-search invariant.
//
// Commands are synchronous and serialized under a single lock. Search
// output is asynchronous: each search gets a dedicated reader goroutine
// that feeds its Search handle and never takes the session lock, so a
// caller blocked in a stop barrier cannot deadlock against the reader.
type Session struct {
	log *slog.Logger
	tr  Transport

	mu          sync.Mutex
	initialized bool
	closed      bool
	name        string
	author      string
	descriptors map[string]*uci.Descriptor
	applied     map[string]string
	active      *Search

	readers errgroup.Group
}

// NewSession creates a session on top of a started transport. The session
// owns the transport from here on and closes it in Close.
func NewSession(log *slog.Logger, tr Transport) *Session {
	return &Session{
		log:         log.With("component", "session"),
		tr:          tr,
		descriptors: make(map[string]*uci.Descriptor, 16),
		applied:     make(map[string]string, 8),
	}
}

// Initialize performs the handshake: it sends "uci", records the engine's
// identification and option advertisements, and returns once "uciok"
// arrives. Initializing an initialized session is a no-op.
func (s *Session) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.ErrEngineClosed
	}

	if s.initialized {
		return nil
	}

	s.log.Debug("Starting UCI handshake")

	if err := s.tr.WriteLine(ctx, uci.CommandUCI); err != nil {
		return err
	}

	sawUCIOK := false

	for line, err := range s.tr.ReadUntil(ctx, uci.IsUCIOK) {
		if err != nil {
			return drainError(err)
		}

		switch {
		case uci.IsUCIOK(line):
			sawUCIOK = true

		case strings.HasPrefix(line, idNamePrefix):
			s.name = strings.TrimPrefix(line, idNamePrefix)

		case strings.HasPrefix(line, idAuthorPrefix):
			s.author = strings.TrimPrefix(line, idAuthorPrefix)

		default:
			desc, err := uci.ParseOptionLine(line)
			if err != nil {
				return err
			}

			if desc != nil {
				s.descriptors[strings.ToLower(desc.Name)] = desc
			}
		}
	}

	if !sawUCIOK {
		return &errors.TransportClosedError{Err: fmt.Errorf("stream ended before uciok")}
	}

	s.initialized = true

	s.log.Info("UCI handshake complete",
		"engine", s.name,
		"options", len(s.descriptors))

	return nil
}

// EngineID returns the name and author the engine reported during the
// handshake. Both are empty before Initialize.
func (s *Session) EngineID() (name, author string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.name, s.author
}

// Options returns the advertised option descriptors, keyed by lowercased
// name. The map is a copy; the descriptors are shared and immutable.
func (s *Session) Options() map[string]*uci.Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()

	return maps.Clone(s.descriptors)
}

// Descriptor returns the advertised descriptor for name, looked up
// case-insensitively.
func (s *Session) Descriptor(name string) (*uci.Descriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.descriptors[strings.ToLower(name)]

	return d, ok
}

// AppliedOptions returns a copy of the option values successfully sent to
// the engine so far, keyed by the descriptor's canonical name.
func (s *Session) AppliedOptions() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return maps.Clone(s.applied)
}

// SetOptions validates and applies option values in order. Engines only
// accept setoption while idle, so a running search is stopped and drained
// first.
//
// Values are applied one at a time; a failure partway leaves the values
// already sent in effect and the rest unapplied. There is no rollback, and
// AppliedOptions reflects exactly what reached the engine.
func (s *Session) SetOptions(ctx context.Context, values ...uci.OptionValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInitializedLocked(); err != nil {
		return err
	}

	if err := s.stopLocked(ctx, ""); err != nil {
		return err
	}

	for _, v := range values {
		desc, ok := s.descriptors[strings.ToLower(v.Name)]
		if !ok {
			return &errors.UnknownOptionError{Name: v.Name}
		}

		name, value, err := uci.FormatSetOption(desc, v.Value)
		if err != nil {
			return err
		}

		if err := s.tr.WriteLine(ctx, uci.SetOptionCommand(name, value)); err != nil {
			return err
		}

		if value != nil {
			s.applied[name] = *value
		} else {
			s.applied[name] = ""
		}

		s.log.Debug("Option applied", "option", name)
	}

	return nil
}

// Search starts a new search and returns its handle.
//
// The position is validated before anything touches the wire. A running
// search is stopped and drained first, so at most one reader goroutine is
// ever bound to the transport. The engine is then prepared with
// ucinewgame, the position command, and an isready round trip that absorbs
// any stray output, before go is issued and the reader loop starts.
func (s *Session) Search(
	ctx context.Context,
	position uci.Position,
	config uci.SearchConfig,
) (*Search, error) {
	if err := position.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInitializedLocked(); err != nil {
		return nil, err
	}

	if err := s.stopLocked(ctx, ""); err != nil {
		return nil, err
	}

	if err := s.tr.WriteLine(ctx, uci.CommandNewGame); err != nil {
		return nil, err
	}

	if err := s.tr.WriteLine(ctx, position.Command()); err != nil {
		return nil, err
	}

	if err := s.awaitReadyLocked(ctx); err != nil {
		return nil, err
	}

	if err := s.tr.WriteLine(ctx, config.GoCommand()); err != nil {
		return nil, err
	}

	search := newSearch(s, position, config, maps.Clone(s.applied))
	s.active = search

	s.readers.Go(func() error {
		return s.readLoop(search)
	})

	s.log.Debug("Search started", "search_id", search.id, "command", config.GoCommand())

	return search, nil
}

// ActiveSearch returns the currently running search, or nil when the
// engine is idle.
func (s *Session) ActiveSearch() *Search {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil && s.active.IsDone() {
		s.active = nil
	}

	return s.active
}

// Stop cancels the active search, if any, and waits until it has drained.
// The wire stop is sent even when the engine is idle; engines ignore it.
func (s *Session) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInitializedLocked(); err != nil {
		return err
	}

	return s.stopLocked(ctx, "")
}

// NewGame tells the engine the next search belongs to a new game. A
// running search is stopped and drained first.
func (s *Session) NewGame(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInitializedLocked(); err != nil {
		return err
	}

	if err := s.stopLocked(ctx, ""); err != nil {
		return err
	}

	return s.tr.WriteLine(ctx, uci.CommandNewGame)
}

// PonderHit tells the engine the move it is pondering on was played. The
// active reader loop keeps running; the engine converts the ponder search
// into a normal one and eventually answers with its bestmove.
func (s *Session) PonderHit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInitializedLocked(); err != nil {
		return err
	}

	return s.tr.WriteLine(ctx, uci.CommandPonderHit)
}

// Debug toggles the engine's debug mode.
func (s *Session) Debug(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireInitializedLocked(); err != nil {
		return err
	}

	return s.tr.WriteLine(ctx, uci.DebugCommand(on))
}

// Close shuts the session down: it stops and drains any running search,
// closes the transport, and waits for the reader goroutines to exit.
// Close is idempotent; after it returns, every other operation reports
// ErrEngineClosed.
//
// The returned error is the transport's close error or, failing that, a
// read error a reader loop died with. A clean end of stream is not an
// error.
func (s *Session) Close() error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()

		return nil
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), closeStopTimeout)
	if err := s.stopLocked(stopCtx, ""); err != nil {
		s.log.Debug("Stop during close failed", "error", err)
	}
	cancel()

	s.closed = true
	s.mu.Unlock()

	err := s.tr.Close()

	// Closing the transport unblocks any reader still waiting on a line.
	if readErr := s.readers.Wait(); readErr != nil && err == nil {
		err = readErr
	}

	s.log.Info("Engine session closed")

	return err
}

// stop is the token-checked cancellation entry used by Search.Stop. After
// Close every search is already done, so there is nothing left to stop.
func (s *Session) stop(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	return s.stopLocked(ctx, token)
}

// stopLocked implements the stop barrier. Callers hold s.mu.
//
// The wire stop is always sent: it is protocol-legal when idle, and the
// token check cannot race ahead of it. token names the search the caller
// intends to cancel; empty targets whatever is active. A stale token means
// the caller's search was already drained and replaced, so beyond the wire
// write the barrier must not touch the successor's state.
func (s *Session) stopLocked(ctx context.Context, token string) error {
	active := s.active
	target := active != nil && (token == "" || token == active.id)

	if target {
		active.markStopped()
	}

	if err := s.tr.WriteLine(ctx, uci.CommandStop); err != nil {
		return err
	}

	if !target {
		return nil
	}

	// The reader loop closes done and never takes s.mu, so holding the
	// lock across this wait cannot deadlock.
	select {
	case <-active.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.active = nil

	return nil
}

// awaitReadyLocked performs an isready round trip. Engines answer readyok
// only once all preceding commands are processed, and any stray lines
// still in flight from an earlier search are discarded on the way.
func (s *Session) awaitReadyLocked(ctx context.Context) error {
	if err := s.tr.WriteLine(ctx, uci.CommandIsReady); err != nil {
		return err
	}

	sawReadyOK := false

	for line, err := range s.tr.ReadUntil(ctx, uci.IsReadyOK) {
		if err != nil {
			return drainError(err)
		}

		if uci.IsReadyOK(line) {
			sawReadyOK = true
		}
	}

	if !sawReadyOK {
		return &errors.TransportClosedError{Err: fmt.Errorf("stream ended before readyok")}
	}

	return nil
}

// readLoop consumes engine output on behalf of one search until its
// bestmove arrives, the stream ends, or reading fails. It is the only
// writer of the search's progress state and never takes the session lock.
func (s *Session) readLoop(search *Search) error {
	// The loop's lifetime is bounded by the search, not by the context the
	// search was started under, so a caller's cancelled context must not
	// stop the drain.
	ctx := context.Background()

	defer search.finish()

	for {
		line, err := s.tr.ReadLine(ctx)
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				s.log.Debug("Engine stream ended during search", "search_id", search.id)

				return nil
			}

			s.log.Error("Read failed during search", "search_id", search.id, "error", err)

			return err
		}

		switch {
		case uci.IsBestMove(line):
			search.setResult(line)

			s.log.Debug("Search finished", "search_id", search.id, "result", line)

			return nil

		case uci.IsInfo(line):
			search.appendInfo(line)

		default:
			// Engines are free to emit other chatter mid-search.
		}
	}
}

// requireInitializedLocked gates operations that need a completed
// handshake. Callers hold s.mu.
func (s *Session) requireInitializedLocked() error {
	if s.closed {
		return errors.ErrEngineClosed
	}

	if !s.initialized {
		return errors.ErrNotInitialized
	}

	return nil
}

// drainError maps an end of stream during a protocol drain to a transport
// error; everything else, context cancellation included, passes through.
func drainError(err error) error {
	if stderrors.Is(err, io.EOF) {
		return &errors.TransportClosedError{Err: err}
	}

	return err
}
