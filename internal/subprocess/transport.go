package subprocess

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/ostbo/uci-engine-sdk-go/internal/cli"
	"github.com/ostbo/uci-engine-sdk-go/internal/config"
	"github.com/ostbo/uci-engine-sdk-go/internal/errors"
	"github.com/ostbo/uci-engine-sdk-go/internal/uci"
)

const (
	// maxScanTokenSize is the maximum buffer size for reading engine output
	// lines. Deep multipv analysis can produce very long pv payloads.
	maxScanTokenSize = 1024 * 1024 // 1MB

	// lineBufferSize is how many received lines may sit unread before the
	// read pump blocks. Engines only speak when spoken to, so this mostly
	// absorbs info bursts between ReadLine calls.
	lineBufferSize = 64

	// quitGraceTimeout is how long Close waits for the engine to exit on
	// its own after "quit" before killing the process.
	quitGraceTimeout = 5 * time.Second
)

// EngineTransport implements Transport by spawning a UCI engine subprocess.
type EngineTransport struct {
	log        *slog.Logger
	options    *config.Options
	enginePath string
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stdout     io.ReadCloser

	lines    chan string   // received lines, closed by the read pump on EOF
	pumpDone chan struct{} // closed when the read pump has fully stopped
	quitCh   chan struct{} // closed by Close to release a blocked pump
	scanErr  error         // set by the read pump before lines closes

	mu          sync.Mutex // protects stdin writes and lifecycle flags
	started     bool       // whether Start() has run
	closed      bool       // whether Close() has been called
	stdinClosed bool       // whether stdin was closed (e.g., due to context cancellation)
}

// Compile-time verification that EngineTransport implements the Transport interface.
var _ config.Transport = (*EngineTransport)(nil)

// NewEngineTransport creates a new subprocess transport from the given options.
//
// The logger is used for operation tracking and debugging. It will receive
// debug, info, warn, and error messages during transport operations,
// including every line crossing the wire at debug level.
//
// Engine discovery is deferred to Start(), which searches for the engine
// binary in the following order:
//  1. The explicit path in options.EnginePath (if provided)
//  2. The UCI_ENGINE_PATH environment variable
//  3. Well-known engine names in the system PATH
//  4. Common installation directories (/usr/local/bin, /usr/bin, /usr/games)
//
// Start() returns EngineNotFoundError if no engine binary can be located.
func NewEngineTransport(log *slog.Logger, options *config.Options) *EngineTransport {
	return &EngineTransport{
		log:     log.With("component", "engine_transport"),
		options: options,
	}
}

// Start starts the engine subprocess.
//
// This method discovers the engine binary, spawns the process, and sets up
// stdin and stdout pipes for line-oriented communication. Engine stderr is
// forwarded to the logger at debug level.
//
// The subprocess deliberately outlives ctx, which only scopes startup.
// Shutdown is driven by Close, not by context cancellation.
//
// Returns EngineNotFoundError if no engine binary can be located, or
// ProcessSpawnError if the process fails to start.
func (t *EngineTransport) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return &errors.TransportClosedError{}
	}

	if t.started {
		return errors.ErrTransportAlreadyStarted
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	t.log.Info("Starting UCI engine subprocess")

	// Discover engine binary
	discoverer := cli.NewDiscoverer(&cli.Config{
		EnginePath: t.options.EnginePath,
		Logger:     t.log,
	})

	enginePath, err := discoverer.Discover(ctx)
	if err != nil {
		return fmt.Errorf("discover engine: %w", err)
	}

	t.enginePath = enginePath

	//nolint:gosec // G204: launching a caller-chosen engine binary is the point
	cmd := exec.Command(t.enginePath)
	cmd.Stderr = &stderrLogger{log: t.log}

	// Set up stdin pipe for sending commands
	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.log.Error("Failed to create stdin pipe", "error", err)

		return &errors.ProcessSpawnError{Path: t.enginePath, Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	t.stdin = stdin

	// Set up stdout pipe for receiving lines
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.log.Error("Failed to create stdout pipe", "error", err)

		return &errors.ProcessSpawnError{Path: t.enginePath, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	t.stdout = stdout

	// Start the process
	if err := cmd.Start(); err != nil {
		t.log.Error("Failed to start engine process", "error", err)

		return &errors.ProcessSpawnError{Path: t.enginePath, Err: err}
	}

	t.cmd = cmd
	t.lines = make(chan string, lineBufferSize)
	t.quitCh = make(chan struct{})
	t.pumpDone = make(chan struct{})
	t.started = true

	go t.readPump()

	t.log.Info("UCI engine subprocess started", "pid", cmd.Process.Pid, "path", t.enginePath)

	return nil
}

// readPump scans engine stdout into the line channel until EOF or Close.
//
// Lines are stripped of trailing whitespace, blank lines are dropped, and
// the observer fires before the line becomes readable. A terminal scanner
// error is recorded in scanErr before the channel closes, so a reader that
// observes the closed channel sees it without further synchronization.
func (t *EngineTransport) readPump() {
	defer close(t.pumpDone)
	defer close(t.lines)
	defer t.log.Debug("Read pump stopped")

	scanner := bufio.NewScanner(t.stdout)
	buf := make([]byte, maxScanTokenSize)
	scanner.Buffer(buf, maxScanTokenSize)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}

		t.log.Debug("Received line from engine", "line", line)

		if t.options.Observer != nil {
			t.options.Observer(config.LineReceived, line)
		}

		select {
		case t.lines <- line:
		case <-t.quitCh:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		t.log.Debug("Engine stdout scanner error", "error", err)

		t.scanErr = err
	}
}

// WriteLine sends one protocol line to the engine stdin.
//
// A trailing newline is appended if absent. This method is safe for
// concurrent use and respects context cancellation even during blocking
// writes: if the context is cancelled mid-write, stdin is closed to unblock
// the write, and subsequent calls return TransportClosedError.
func (t *EngineTransport) WriteLine(ctx context.Context, line string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.writeLineLocked(ctx, line)
}

// writeLineLocked is WriteLine without the locking. Callers hold t.mu.
func (t *EngineTransport) writeLineLocked(ctx context.Context, line string) error {
	if t.stdin == nil {
		return errors.ErrEngineNotStarted
	}

	if t.closed || t.stdinClosed {
		return &errors.TransportClosedError{}
	}

	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.log.Debug("Sending line to engine", "line", line)

	if t.options.Observer != nil {
		t.options.Observer(config.LineSent, line)
	}

	data := []byte(line)
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	// Write in goroutine to respect context cancellation
	done := make(chan error, 1)

	go func() {
		_, err := t.stdin.Write(data)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.log.Error("Failed to write line to engine", "error", err)

			return &errors.TransportClosedError{Err: fmt.Errorf("write to stdin: %w", err)}
		}

		return nil

	case <-ctx.Done():
		t.log.Debug("Context cancelled during write, closing stdin")
		// Close stdin to unblock the blocked Write (safe since Go 1.9+)
		_ = t.stdin.Close()
		t.stdinClosed = true
		// Wait for goroutine to exit with timeout to prevent leak
		select {
		case <-done:
			// Write goroutine exited cleanly
		case <-time.After(1 * time.Second):
			t.log.Warn("Write goroutine did not exit after stdin close, potential leak")
		}

		return ctx.Err()
	}
}

// ReadLine blocks until the next engine line arrives.
//
// Returned lines have trailing whitespace stripped and are never empty.
// When the engine closes its stdout, ReadLine returns io.EOF after the
// buffered lines drain; a scanner failure surfaces as TransportClosedError
// instead. A context cancellation abandons only the wait: the next line
// stays buffered for the following call.
func (t *EngineTransport) ReadLine(ctx context.Context) (string, error) {
	t.mu.Lock()
	lines := t.lines
	t.mu.Unlock()

	if lines == nil {
		return "", errors.ErrEngineNotStarted
	}

	select {
	case line, ok := <-lines:
		if !ok {
			if t.scanErr != nil {
				return "", &errors.TransportClosedError{Err: t.scanErr}
			}

			return "", io.EOF
		}

		return line, nil

	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ReadUntil returns a lazy sequence of lines ending at the first line
// satisfying match, inclusive. A transport error ends the sequence with a
// final ("", err) pair. Breaking out of the loop early leaves the remaining
// lines buffered for later reads.
func (t *EngineTransport) ReadUntil(ctx context.Context, match func(string) bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			line, err := t.ReadLine(ctx)
			if err != nil {
				yield("", err)

				return
			}

			if !yield(line, nil) {
				return
			}

			if match(line) {
				return
			}
		}
	}
}

// Close shuts the engine down.
//
// A "quit" command is sent first so the engine can exit on its own; if it
// has not exited after a grace period the process is killed. Close waits
// for the process to be reaped and is safe to call multiple times or on a
// transport that never started.
func (t *EngineTransport) Close() error {
	t.mu.Lock()

	if t.closed {
		t.mu.Unlock()

		return nil
	}

	if t.started && !t.stdinClosed {
		// Ask the engine to exit on its own. Best-effort: the grace
		// timeout below backstops engines that ignore it.
		quitCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		_ = t.writeLineLocked(quitCtx, uci.CommandQuit)

		cancel()

		if !t.stdinClosed {
			_ = t.stdin.Close()
			t.stdinClosed = true
		}
	}

	t.closed = true

	if t.quitCh != nil {
		close(t.quitCh)
	}

	pumpDone := t.pumpDone
	cmd := t.cmd
	t.mu.Unlock()

	if cmd == nil {
		return nil
	}

	// Let the pump drain stdout to EOF before Wait closes the pipe.
	select {
	case <-pumpDone:
	case <-time.After(quitGraceTimeout):
		t.log.Warn("Engine did not exit after quit, killing process", "pid", cmd.Process.Pid)

		if err := cmd.Process.Kill(); err != nil {
			t.log.Error("Failed to kill engine process", "error", err)
		}

		<-pumpDone
	}

	if err := cmd.Wait(); err != nil {
		t.log.Debug("Engine process exited with error during shutdown", "error", err)
	} else {
		t.log.Debug("Engine process exited cleanly")
	}

	t.log.Info("UCI engine subprocess closed")

	return nil
}

// stderrLogger forwards engine stderr to the logger, one line per record.
//
// exec.Cmd drains the stderr pipe into Write from a goroutine it owns and
// Wait reaps it, so the transport needs no lifecycle management here. Only
// that single goroutine writes, so no locking is needed either.
type stderrLogger struct {
	log *slog.Logger
	buf bytes.Buffer
}

func (w *stderrLogger) Write(p []byte) (int, error) {
	w.buf.Write(p)

	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line, keep it for the next write.
			w.buf.WriteString(line)

			break
		}

		line = strings.TrimRight(line, " \t\r\n")
		if line != "" {
			w.log.Debug("Engine stderr", "line", line)
		}
	}

	return len(p), nil
}
