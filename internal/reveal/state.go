package reveal

import "fmt"

// Phase is the lifecycle stage of a run.
type Phase int

const (
	// PhaseIdle is the zero value: the state was never started.
	PhaseIdle Phase = iota
	// PhaseRunning means positions are still pending.
	PhaseRunning
	// PhaseComplete means every position is revealed. It is terminal.
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is one snapshot of a run. The zero value is an idle state.
type State struct {
	cfg       Config
	target    []rune
	frame     []rune
	revealed  []bool
	pending   int
	iteration int
	phase     Phase
	pool      []rune
}

// Config returns the configuration of the run.
func (s *State) Config() Config {
	if s == nil {
		return Config{}
	}
	return s.cfg
}

// Phase returns the lifecycle stage of the run.
func (s *State) Phase() Phase {
	if s == nil {
		return PhaseIdle
	}
	return s.phase
}

// Done reports whether the run has completed.
func (s *State) Done() bool {
	return s.Phase() == PhaseComplete
}

// Frame returns the text to display for this snapshot.
func (s *State) Frame() string {
	if s == nil {
		return ""
	}
	return string(s.frame)
}

// Runes returns a copy of the frame as runes, one per target position.
func (s *State) Runes() []rune {
	if s == nil {
		return nil
	}
	return append([]rune(nil), s.frame...)
}

// Iteration returns the number of ticks applied so far.
func (s *State) Iteration() int {
	if s == nil {
		return 0
	}
	return s.iteration
}

// Len returns the number of positions in the target text.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.target)
}

// Pending returns the number of positions that are still scrambled.
func (s *State) Pending() int {
	if s == nil {
		return 0
	}
	return s.pending
}

// IsRevealed reports whether position i shows its target character.
// Whitespace positions are always revealed.
func (s *State) IsRevealed(i int) bool {
	if s == nil || i < 0 || i >= len(s.revealed) {
		return false
	}
	return s.revealed[i]
}

// Revealed returns the revealed positions in ascending order.
func (s *State) Revealed() []int {
	if s == nil {
		return nil
	}
	indices := make([]int, 0, len(s.revealed)-s.pending)
	for i, ok := range s.revealed {
		if ok {
			indices = append(indices, i)
		}
	}
	return indices
}

func (s *State) clone() *State {
	next := *s
	next.frame = append([]rune(nil), s.frame...)
	next.revealed = append([]bool(nil), s.revealed...)
	return &next
}

func (s *State) reveal(i int) {
	s.revealed[i] = true
	s.frame[i] = s.target[i]
	s.pending--
}

func (s *State) scramble(i int, src Source) {
	s.frame[i] = s.pool[src.IntN(len(s.pool))]
}

// nextEligible returns the only position a sequential run may reveal this
// tick, or -1 when nothing is pending.
func (s *State) nextEligible() int {
	switch s.cfg.Direction {
	case DirectionEnd:
		for i := len(s.revealed) - 1; i >= 0; i-- {
			if !s.revealed[i] {
				return i
			}
		}
		return -1
	case DirectionCenter:
		// Distances are doubled so the midpoint (n-1)/2 stays an integer.
		best, bestDist := -1, 0
		last := len(s.target) - 1
		for i, ok := range s.revealed {
			if ok {
				continue
			}
			dist := 2*i - last
			if dist < 0 {
				dist = -dist
			}
			if best < 0 || dist < bestDist {
				best, bestDist = i, dist
			}
		}
		return best
	default:
		for i, ok := range s.revealed {
			if !ok {
				return i
			}
		}
		return -1
	}
}
