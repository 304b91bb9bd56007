package reveal

import "unicode"

// Engine starts and advances reveal runs.
//
// An Engine is not safe for concurrent use: its Source is shared by every
// run it drives. Use one Engine per animation instance.
type Engine struct {
	src Source
}

// NewEngine returns an Engine drawing from src, or from a clock-seeded
// source when src is nil.
func NewEngine(src Source) *Engine {
	if src == nil {
		src = NewSource()
	}
	return &Engine{src: src}
}

// Start validates cfg and returns the first frame of a new run.
//
// Whitespace is revealed up front and every other position is scrambled.
// Text without any non-whitespace character completes immediately.
func (e *Engine) Start(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	target := []rune(cfg.Text)
	s := &State{
		cfg:      cfg,
		target:   target,
		frame:    make([]rune, len(target)),
		revealed: make([]bool, len(target)),
		phase:    PhaseRunning,
		pool:     cfg.pool(),
	}
	for i, r := range target {
		if unicode.IsSpace(r) {
			s.revealed[i] = true
			s.frame[i] = r
			continue
		}
		s.pending++
		s.scramble(i, e.src)
	}
	if s.pending == 0 {
		s.phase = PhaseComplete
	}
	return s, nil
}

// Tick advances s by one step and returns the new snapshot.
//
// A nil, idle or complete state is returned unchanged, so late ticks from an
// imprecise timer are harmless.
func (e *Engine) Tick(s *State) *State {
	if s == nil || s.phase != PhaseRunning {
		return s
	}

	next := s.clone()
	forced := next.iteration >= next.cfg.MaxIterations
	eligible := -1
	if next.cfg.Sequential && !forced {
		eligible = next.nextEligible()
	}

	for i, done := range next.revealed {
		if done {
			continue
		}
		if forced {
			next.reveal(i)
			continue
		}
		if e.src.Float64() < next.cfg.RevealProbability && (!next.cfg.Sequential || i == eligible) {
			next.reveal(i)
			continue
		}
		next.scramble(i, e.src)
	}

	next.iteration++
	if next.pending == 0 {
		next.phase = PhaseComplete
	}
	return next
}

// Restart discards s and starts a run for cfg. The caller must make sure no
// tick meant for s is applied afterwards.
func (e *Engine) Restart(_ *State, cfg Config) (*State, error) {
	return e.Start(cfg)
}
