package protocol

import (
	"context"
	"iter"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/oklog/ulid/v2"
	"github.com/ostbo/uci-engine-sdk-go/internal/errors"
	"github.com/ostbo/uci-engine-sdk-go/internal/uci"
)

// Search is the live handle for one engine search.
//
// A Search is created by Session.Search and fed by exactly one reader
// goroutine, which appends info lines, records the bestmove, and closes
// Done. Everything exported here is a snapshot or a wait; all methods are
// safe for concurrent use. A finished Search is never reused.
type Search struct {
	id       string
	position uci.Position
	config   uci.SearchConfig
	applied  map[string]string

	session *Session

	// mu guards the progress state below. The reader goroutine is the only
	// writer; callers take snapshots.
	mu        sync.Mutex
	info      []string
	result    string
	hasResult bool
	progress  chan struct{}

	stopped  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// newSearch builds a handle bound to its session's reader loop. applied is
// owned by the new Search; callers pass a clone.
func newSearch(
	session *Session,
	position uci.Position,
	config uci.SearchConfig,
	applied map[string]string,
) *Search {
	return &Search{
		id:       ulid.Make().String(),
		position: position,
		config:   config,
		applied:  applied,
		session:  session,
		progress: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// ID returns the token identifying this search within its session.
func (s *Search) ID() string {
	return s.id
}

// Position returns the position the search was started from.
func (s *Search) Position() uci.Position {
	return s.position
}

// Config returns the limits the search was started with.
func (s *Search) Config() uci.SearchConfig {
	return s.config
}

// Options returns the option values that were in effect on the engine when
// the search started.
func (s *Search) Options() map[string]string {
	return maps.Clone(s.applied)
}

// Info returns a copy of the raw info lines received so far, in arrival
// order.
func (s *Search) Info() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.info)
}

// Result returns the raw bestmove line and whether one has been received.
// It never blocks; use WaitDone to wait for the search to finish.
func (s *Search) Result() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result, s.hasResult
}

// BestMove returns the decoded result. ok is false while the search is
// still running and when it ended without a result.
func (s *Search) BestMove() (move, ponder string, ok bool) {
	line, has := s.Result()
	if !has {
		return "", "", false
	}

	return uci.ParseBestMove(line)
}

// Done returns a channel that is closed when the search has finished, with
// or without a result.
func (s *Search) Done() <-chan struct{} {
	return s.done
}

// IsDone reports whether the search has finished.
func (s *Search) IsDone() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// WasStopped reports whether a cancellation was requested while the search
// was still running. A stopped search usually still carries a result, since
// engines answer stop with their current bestmove.
func (s *Search) WasStopped() bool {
	return s.stopped.Load()
}

// WaitDone blocks until the search finishes or ctx is cancelled.
func (s *Search) WaitDone(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitProgress blocks until the search publishes new progress. It returns
// immediately when the search is already done, so a loop of WaitProgress
// plus Info cannot hang at the end of a search.
func (s *Search) WaitProgress(ctx context.Context) error {
	s.mu.Lock()
	progress := s.progress
	s.mu.Unlock()

	select {
	case <-progress:
		return nil
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels the search and waits until it has fully drained. Stopping a
// finished search is a no-op, and a Stop that lost the race against a
// successor search cannot disturb that successor.
func (s *Search) Stop(ctx context.Context) error {
	if s.IsDone() {
		return nil
	}

	return s.session.stop(ctx, s.id)
}

// Lines streams the raw protocol lines of the search as they arrive: every
// info line in order, then the bestmove line, after which the sequence
// ends. If the search ends without a result, the final element carries
// ErrSearchAborted. Cancelling ctx yields the context error and ends the
// sequence; lines already delivered are not replayed by a second iteration.
func (s *Search) Lines(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		next := 0

		for {
			// Order matters: observe done before snapshotting, so a
			// finished search is read only after its result landed. The
			// progress channel is snapshotted together with the state it
			// versions, so a pulse between snapshot and wait is never lost.
			finished := s.IsDone()

			s.mu.Lock()
			progress := s.progress
			pending := s.info[next:]
			result, hasResult := s.result, s.hasResult
			s.mu.Unlock()

			for _, line := range pending {
				next++

				if !yield(line, nil) {
					return
				}
			}

			if finished {
				if hasResult {
					yield(result, nil)
				} else {
					yield("", errors.ErrSearchAborted)
				}

				return
			}

			select {
			case <-progress:
			case <-s.done:
			case <-ctx.Done():
				yield("", ctx.Err())

				return
			}
		}
	}
}

// appendInfo records one info line and wakes progress waiters. Called only
// from the session's reader loop.
func (s *Search) appendInfo(line string) {
	s.mu.Lock()
	s.info = append(s.info, line)
	s.mu.Unlock()

	s.pulse()
}

// setResult records the raw bestmove line. Called only from the session's
// reader loop, before finish.
func (s *Search) setResult(line string) {
	s.mu.Lock()
	s.result = line
	s.hasResult = true
	s.mu.Unlock()
}

// finish marks the search done. Safe to call more than once.
func (s *Search) finish() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// markStopped records a cancellation request against a still-running
// search.
func (s *Search) markStopped() {
	if !s.IsDone() {
		s.stopped.Store(true)
	}
}

// pulse wakes every current progress waiter by closing the broadcast
// channel and installing a fresh one.
func (s *Search) pulse() {
	s.mu.Lock()
	ch := s.progress
	s.progress = make(chan struct{})
	s.mu.Unlock()

	close(ch)
}
