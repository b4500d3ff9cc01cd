//go:build integration

// Package integration exercises the SDK against a real UCI engine.
//
// The tests discover the engine the same way the SDK does: an explicit
// UCI_ENGINE_PATH, well-known binary names in PATH, or common install
// directories. Every test skips when no engine is installed, so the
// suite is safe to run anywhere:
//
//	go test -tags integration ./integration/
package integration

import (
	"context"
	"errors"
	"regexp"
	"testing"

	ucisdk "github.com/ostbo/uci-engine-sdk-go"
)

// moveRe matches a move in coordinate notation, e.g. e2e4 or a7a8q.
var moveRe = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)

// skipIfEngineNotInstalled skips the test if the error indicates no UCI
// engine binary could be found.
func skipIfEngineNotInstalled(t *testing.T, err error) {
	t.Helper()

	if _, ok := errors.AsType[*ucisdk.EngineNotFoundError](err); ok {
		t.Skip("no UCI engine installed")
	}
}

// startedEngine starts an engine for the test and closes it on cleanup.
func startedEngine(t *testing.T, ctx context.Context, opts ...ucisdk.Option) ucisdk.Engine {
	t.Helper()

	engine := ucisdk.NewEngine()

	if err := engine.Start(ctx, opts...); err != nil {
		skipIfEngineNotInstalled(t, err)
		t.Fatalf("Start failed: %v", err)
	}

	t.Cleanup(func() {
		if err := engine.Close(); err != nil {
			t.Logf("Close error: %v", err)
		}
	})

	return engine
}

// isMoveLike reports whether s looks like a coordinate-notation move.
func isMoveLike(s string) bool {
	return moveRe.MatchString(s)
}
