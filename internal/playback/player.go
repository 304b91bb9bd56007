package playback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/PolarWolf314/unveil/internal/clock"
	kerrors "github.com/PolarWolf314/unveil/internal/errors"
	logger "github.com/PolarWolf314/unveil/internal/logging"
	"github.com/PolarWolf314/unveil/internal/reveal"
	"github.com/google/uuid"
)

// Renderer displays frames. Render is called from the run's goroutine, one
// frame at a time and never concurrently for the same Player.
type Renderer interface {
	Render(s *reveal.State) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(s *reveal.State) error

// Render calls f(s).
func (f RendererFunc) Render(s *reveal.State) error {
	return f(s)
}

// Options configures a Player.
type Options struct {
	// Logger receives run lifecycle messages.
	Logger logger.Logger
}

// Result describes a finished run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID string

	// Text is the target text of the run.
	Text string

	// Frames is the number of frames rendered, including the initial frame.
	Frames int

	// Ticks is the number of ticks applied.
	Ticks int

	// Final is the last state of the run.
	Final *reveal.State

	// Elapsed is the clock time between the first and the last frame.
	Elapsed time.Duration
}

// Completed reports whether the run reached the complete phase.
func (r *Result) Completed() bool {
	return r != nil && r.Final.Done()
}

// Player plays reveal runs one at a time.
type Player struct {
	engine   *reveal.Engine
	clock    clock.Clock
	renderer Renderer
	log      logger.Logger

	mu     sync.Mutex
	active *Run
}

// New returns a Player. A nil clock selects clock.Real().
func New(engine *reveal.Engine, clk clock.Clock, renderer Renderer, opts Options) *Player {
	if clk == nil {
		clk = clock.Real()
	}
	return &Player{
		engine:   engine,
		clock:    clk,
		renderer: renderer,
		log:      opts.Logger,
	}
}

// Run is a handle on an active or finished run.
type Run struct {
	// ID uniquely identifies the run.
	ID string

	cancel context.CancelCauseFunc
	done   chan struct{}
	result *Result
	err    error
}

// Wait blocks until the run ends and returns its result. The result is
// non-nil even when the run was cancelled or failed.
func (r *Run) Wait() (*Result, error) {
	<-r.done
	return r.result, r.err
}

// Done returns a channel closed when the run ends.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Cancel stops the run. It does not wait for the run to exit.
func (r *Run) Cancel() {
	r.cancel(kerrors.ErrPlayerStopped)
}

// Start begins a run for cfg and returns immediately.
//
// Any active run is cancelled with ErrRunSuperseded and has fully exited
// before Start validates cfg, so an invalid cfg still stops the old run.
func (p *Player) Start(ctx context.Context, cfg reveal.Config) (*Run, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active != nil {
		p.log.Debugf("Superseding run %s", p.active.ID)
		p.active.cancel(kerrors.ErrRunSuperseded)
		<-p.active.done
		p.active = nil
	}

	state, err := p.engine.Start(cfg)
	if err != nil {
		return nil, fmt.Errorf("starting run: %w", err)
	}

	runCtx, cancel := context.WithCancelCause(ctx)
	run := &Run{
		ID:     uuid.New().String(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	p.active = run
	p.log.Debugf("Starting run %s (%d chars, interval %s, max iterations %d)", run.ID, state.Len(), cfg.TickInterval, cfg.MaxIterations)

	go p.loop(runCtx, run, state)
	return run, nil
}

// Play runs cfg to completion and returns its result.
func (p *Player) Play(ctx context.Context, cfg reveal.Config) (*Result, error) {
	run, err := p.Start(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return run.Wait()
}

// Sequence plays each config in order, stopping at the first error.
func (p *Player) Sequence(ctx context.Context, cfgs []reveal.Config) ([]*Result, error) {
	results := make([]*Result, 0, len(cfgs))
	for i, cfg := range cfgs {
		result, err := p.Play(ctx, cfg)
		if result != nil {
			results = append(results, result)
		}
		if err != nil {
			return results, fmt.Errorf("playing item %d of %d: %w", i+1, len(cfgs), err)
		}
	}
	return results, nil
}

// Stop cancels the active run, if any, and waits for it to exit.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active == nil {
		return
	}
	p.active.cancel(kerrors.ErrPlayerStopped)
	<-p.active.done
	p.active = nil
}

func (p *Player) loop(ctx context.Context, run *Run, state *reveal.State) {
	defer close(run.done)

	started := p.clock.Now()
	result := &Result{RunID: run.ID, Text: state.Config().Text}
	finish := func(err error) {
		result.Final = state
		result.Elapsed = p.clock.Now().Sub(started)
		run.result = result
		run.err = err
		if err != nil {
			p.log.Debugf("Run %s ended after %d ticks: %v", run.ID, result.Ticks, err)
			return
		}
		p.log.Debugf("Run %s completed after %d ticks", run.ID, result.Ticks)
	}

	if ctx.Err() != nil {
		finish(context.Cause(ctx))
		return
	}
	if err := p.renderer.Render(state); err != nil {
		finish(fmt.Errorf("rendering frame: %w", err))
		return
	}
	result.Frames++
	if state.Done() {
		finish(nil)
		return
	}

	ticker := p.clock.NewTicker(state.Config().TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			finish(context.Cause(ctx))
			return
		case <-ticker.C():
			// A tick and a cancellation can be ready together; cancellation wins.
			if ctx.Err() != nil {
				finish(context.Cause(ctx))
				return
			}
			state = p.engine.Tick(state)
			result.Ticks++
			if err := p.renderer.Render(state); err != nil {
				finish(fmt.Errorf("rendering frame: %w", err))
				return
			}
			result.Frames++
			if state.Done() {
				finish(nil)
				return
			}
		}
	}
}
