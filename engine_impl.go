package ucisdk

import (
	"context"

	"github.com/ostbo/uci-engine-sdk-go/internal/engine"
)

// engineWrapper wraps the internal engine driver to adapt it to the public
// interface.
type engineWrapper struct {
	impl *engine.Engine
}

// Compile-time check that *engineWrapper implements the Engine interface.
var _ Engine = (*engineWrapper)(nil)

// newEngineImpl creates the internal engine implementation.
func newEngineImpl() Engine {
	return &engineWrapper{impl: engine.New()}
}

// Start launches the engine process and performs the UCI handshake.
func (e *engineWrapper) Start(ctx context.Context, opts ...Option) error {
	return e.impl.Start(ctx, applyEngineOptions(opts))
}

// EngineID returns the name and author reported during the handshake.
func (e *engineWrapper) EngineID() (name, author string) {
	return e.impl.EngineID()
}

// Options returns the option descriptors the engine advertised.
func (e *engineWrapper) Options() map[string]OptionDescriptor {
	return e.impl.Options()
}

// Descriptor returns the advertised descriptor for name.
func (e *engineWrapper) Descriptor(name string) (OptionDescriptor, bool) {
	return e.impl.Descriptor(name)
}

// AppliedOptions returns the option values sent to the engine so far.
func (e *engineWrapper) AppliedOptions() map[string]string {
	return e.impl.AppliedOptions()
}

// SetOptions validates and applies option values in order.
func (e *engineWrapper) SetOptions(ctx context.Context, values ...OptionValue) error {
	return e.impl.SetOptions(ctx, values...)
}

// NewGame tells the engine the next search belongs to a fresh game.
func (e *engineWrapper) NewGame(ctx context.Context) error {
	return e.impl.NewGame(ctx)
}

// Debug toggles the engine's debug mode.
func (e *engineWrapper) Debug(ctx context.Context, enable bool) error {
	return e.impl.Debug(ctx, enable)
}

// Search starts a search from position and returns its live handle.
func (e *engineWrapper) Search(
	ctx context.Context,
	position Position,
	config SearchConfig,
) (*Search, error) {
	return e.impl.Search(ctx, position, config)
}

// ActiveSearch returns the running search, or nil when the engine is idle.
func (e *engineWrapper) ActiveSearch() *Search {
	return e.impl.ActiveSearch()
}

// PonderHit tells the engine the move it is pondering on was played.
func (e *engineWrapper) PonderHit(ctx context.Context) error {
	return e.impl.PonderHit(ctx)
}

// Stop cancels the active search and waits for its bestmove to drain.
func (e *engineWrapper) Stop(ctx context.Context) error {
	return e.impl.Stop(ctx)
}

// Close stops any running search and quits the engine process.
func (e *engineWrapper) Close() error {
	return e.impl.Close()
}
