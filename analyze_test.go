package ucisdk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_DeliversFinishedSearch(t *testing.T) {
	ctx := context.Background()
	transport := newMockTransport()

	search, err := Analyze(ctx, MovesPosition("e2e4"), SearchConfig{Depth: 3},
		WithTransport(transport),
	)
	require.NoError(t, err)
	require.True(t, search.IsDone())

	move, ponder, ok := search.BestMove()
	require.True(t, ok)
	assert.Equal(t, "e2e4", move)
	assert.Equal(t, "e7e5", ponder)

	last, ok := LastInfo(search)
	require.True(t, ok)
	assert.Equal(t, 3, last.Depth)

	// The one-shot engine is gone; the handle still reads buffered state.
	assert.True(t, transport.isClosed())
	assert.Len(t, search.Info(), 4)
}

func TestAnalyze_AbortedSearch(t *testing.T) {
	ctx := context.Background()

	transport := newMockTransport()
	transport.dieOnGo = true

	search, err := Analyze(ctx, MovesPosition("e2e4"), SearchConfig{Depth: 9},
		WithTransport(transport),
	)
	require.ErrorIs(t, err, ErrSearchAborted)
	assert.Nil(t, search)
	assert.True(t, transport.isClosed())
}

func TestAnalyze_InvalidPosition(t *testing.T) {
	ctx := context.Background()

	_, err := Analyze(ctx, Position{}, SearchConfig{Depth: 1},
		WithTransport(newMockTransport()),
	)
	require.Error(t, err)

	_, ok := errors.AsType[*InvalidPositionError](err)
	assert.True(t, ok)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Analyze(ctx, MovesPosition("e2e4"), SearchConfig{Depth: 1},
		WithTransport(newMockTransport()),
	)
	require.ErrorIs(t, err, context.Canceled)
}
