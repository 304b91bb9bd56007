package clock

import (
	"sync"
	"time"
)

// Manual is a Clock that only ticks when Step is called.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	tickers map[*manualTicker]struct{}
}

// NewManual returns a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{
		now:     start,
		tickers: make(map[*manualTicker]struct{}),
	}
}

// NewTicker registers a ticker that fires on every Step.
func (m *Manual) NewTicker(d time.Duration) Ticker {
	t := &manualTicker{
		clock:    m,
		interval: d,
		c:        make(chan time.Time),
		stopped:  make(chan struct{}),
	}
	m.mu.Lock()
	m.tickers[t] = struct{}{}
	m.mu.Unlock()
	return t
}

// Now returns the current mocked time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Active returns the number of tickers that have not been stopped.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

// Step advances the clock by the longest live ticker interval and delivers one
// tick to every live ticker. It blocks until each tick has been received or
// its ticker stopped, and returns the number of ticks delivered.
func (m *Manual) Step() int {
	m.mu.Lock()
	live := make([]*manualTicker, 0, len(m.tickers))
	var step time.Duration
	for t := range m.tickers {
		live = append(live, t)
		if t.interval > step {
			step = t.interval
		}
	}
	m.now = m.now.Add(step)
	now := m.now
	m.mu.Unlock()

	delivered := 0
	for _, t := range live {
		select {
		case t.c <- now:
			delivered++
		case <-t.stopped:
		}
	}
	return delivered
}

// WaitForTickers blocks until at least n tickers are live or the timeout expires.
// It reports whether the count was reached.
func (m *Manual) WaitForTickers(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if m.Active() >= n {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}

type manualTicker struct {
	clock    *Manual
	interval time.Duration
	c        chan time.Time
	once     sync.Once
	stopped  chan struct{}
}

func (t *manualTicker) C() <-chan time.Time {
	return t.c
}

func (t *manualTicker) Stop() {
	t.once.Do(func() {
		t.clock.mu.Lock()
		delete(t.clock.tickers, t)
		t.clock.mu.Unlock()
		close(t.stopped)
	})
}
