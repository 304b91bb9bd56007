// Package reveal implements the progressive text-reveal animation engine.
//
// A run starts from a scrambled rendering of a target string and converges,
// one tick at a time, to the exact original text. The engine is a pure state
// machine: it never sleeps, draws or writes anywhere. Callers own the timer
// (see the clock package) and the display (see the ui package), and the
// playback package wires the three together.
//
// # Runs
//
//	engine := reveal.NewEngine(reveal.NewSeededSource(42))
//	state, err := engine.Start(reveal.DefaultConfig("ACCESS GRANTED"))
//	for state.Phase() == reveal.PhaseRunning {
//	    state = engine.Tick(state)
//	    fmt.Println(state.Frame())
//	}
//
// Every Tick returns a new State snapshot; earlier snapshots stay valid.
// Ticking a nil, idle or completed state is a no-op.
//
// # Reveal Policies
//
// Whitespace is shown as-is from the first frame. Every other position is
// redrawn from the scramble pool each tick until it reveals:
//   - non-sequential runs let any position reveal independently with
//     Config.RevealProbability per tick
//   - sequential runs only accept a successful draw on the single position
//     next in Config.Direction order, so at most one position reveals per tick
//
// Once the iteration count reaches Config.MaxIterations every pending
// position is revealed, so a run completes within MaxIterations+1 ticks.
package reveal
