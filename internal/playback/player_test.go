package playback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/PolarWolf314/unveil/internal/clock"
	kerrors "github.com/PolarWolf314/unveil/internal/errors"
	"github.com/PolarWolf314/unveil/internal/reveal"
)

type fixedSource struct{ draw float64 }

func (f fixedSource) Float64() float64 { return f.draw }
func (f fixedSource) IntN(n int) int   { return 0 }

// recorder stores the text and frame of every rendered state.
type recorder struct {
	mu     sync.Mutex
	texts  []string
	frames []string
	failAt int
}

func (r *recorder) Render(s *reveal.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, s.Config().Text)
	r.frames = append(r.frames, s.Frame())
	if r.failAt > 0 && len(r.frames) == r.failAt {
		return errors.New("display unplugged")
	}
	return nil
}

func (r *recorder) snapshot() ([]string, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...), append([]string(nil), r.frames...)
}

func newTestPlayer(draw float64) (*Player, *clock.Manual, *recorder) {
	m := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := &recorder{}
	engine := reveal.NewEngine(fixedSource{draw: draw})
	return New(engine, m, rec, Options{}), m, rec
}

func config(text string, maxIterations int) reveal.Config {
	cfg := reveal.DefaultConfig(text)
	cfg.Alphabet = "#"
	cfg.MaxIterations = maxIterations
	return cfg
}

// drive steps the clock until done is closed.
func drive(m *clock.Manual, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}
		if m.Step() == 0 {
			time.Sleep(time.Millisecond)
		}
	}
}

func TestPlayRunsToCompletion(t *testing.T) {
	player, m, rec := newTestPlayer(0.99)

	run, err := player.Start(context.Background(), config("HI", 3))
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	drive(m, run.Done())

	result, err := run.Wait()
	if err != nil {
		t.Fatalf("Wait() unexpected error: %v", err)
	}
	if !result.Completed() {
		t.Fatalf("run did not complete: phase %s", result.Final.Phase())
	}
	if result.Ticks != 4 || result.Frames != 5 {
		t.Errorf("Ticks = %d, Frames = %d, want 4 and 5", result.Ticks, result.Frames)
	}
	if result.RunID == "" || result.RunID != run.ID {
		t.Errorf("RunID = %q, want %q", result.RunID, run.ID)
	}
	if result.Elapsed < 4*reveal.DefaultTickInterval {
		t.Errorf("Elapsed = %s, want at least %s", result.Elapsed, 4*reveal.DefaultTickInterval)
	}

	_, frames := rec.snapshot()
	want := []string{"##", "##", "##", "##", "HI"}
	if len(frames) != len(want) {
		t.Fatalf("rendered %d frames %v, want %v", len(frames), frames, want)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %q, want %q", i, frames[i], want[i])
		}
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d after completion, want the ticker stopped", m.Active())
	}
}

func TestPlayCompletesImmediatelyWithoutTicker(t *testing.T) {
	player, m, rec := newTestPlayer(0.99)

	result, err := player.Play(context.Background(), config("   ", 5))
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if result.Ticks != 0 || result.Frames != 1 || !result.Completed() {
		t.Errorf("result = %+v, want one frame and no ticks", result)
	}
	if _, frames := rec.snapshot(); len(frames) != 1 || frames[0] != "   " {
		t.Errorf("frames = %q, want one blank frame", frames)
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d, want no ticker for an empty run", m.Active())
	}
}

func TestStartSupersedesActiveRun(t *testing.T) {
	player, m, rec := newTestPlayer(0.99)

	first, err := player.Start(context.Background(), config("AAAA", 1000))
	if err != nil {
		t.Fatalf("Start(first) failed: %v", err)
	}
	if !m.WaitForTickers(1, time.Second) {
		t.Fatal("first run never created its ticker")
	}
	for i := 0; i < 3; i++ {
		m.Step()
	}

	second, err := player.Start(context.Background(), config("BB", 2))
	if err != nil {
		t.Fatalf("Start(second) failed: %v", err)
	}

	select {
	case <-first.Done():
	default:
		t.Fatal("first run still active after being superseded")
	}
	firstResult, err := first.Wait()
	if !errors.Is(err, kerrors.ErrRunSuperseded) {
		t.Errorf("first.Wait() error = %v, want ErrRunSuperseded", err)
	}
	if firstResult == nil || firstResult.Completed() {
		t.Errorf("first result = %+v, want an incomplete result", firstResult)
	}

	drive(m, second.Done())
	secondResult, err := second.Wait()
	if err != nil {
		t.Fatalf("second.Wait() unexpected error: %v", err)
	}
	if secondResult.Final.Frame() != "BB" {
		t.Errorf("second final frame = %q, want %q", secondResult.Final.Frame(), "BB")
	}

	texts, _ := rec.snapshot()
	switched := false
	for i, text := range texts {
		if text == "BB" {
			switched = true
			continue
		}
		if switched {
			t.Fatalf("frame %d for %q rendered after the second run started", i, text)
		}
	}
	if !switched {
		t.Error("second run never rendered")
	}
}

func TestStartInvalidConfigStopsActiveRun(t *testing.T) {
	player, m, _ := newTestPlayer(0.99)

	first, err := player.Start(context.Background(), config("AAAA", 1000))
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	m.WaitForTickers(1, time.Second)

	bad := config("BAD", 1)
	bad.TickInterval = 0
	if _, err := player.Start(context.Background(), bad); !errors.Is(err, kerrors.ErrInvalidTickInterval) {
		t.Errorf("Start(bad) error = %v, want ErrInvalidTickInterval", err)
	}
	if _, err := first.Wait(); !errors.Is(err, kerrors.ErrRunSuperseded) {
		t.Errorf("first.Wait() error = %v, want ErrRunSuperseded", err)
	}
}

func TestContextCancellationStopsRun(t *testing.T) {
	player, m, rec := newTestPlayer(0.99)
	ctx, cancel := context.WithCancel(context.Background())

	run, err := player.Start(ctx, config("CANCEL", 1000))
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	m.WaitForTickers(1, time.Second)
	m.Step()
	cancel()

	result, err := run.Wait()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
	if result.Completed() {
		t.Error("cancelled run reported completion")
	}

	_, before := rec.snapshot()
	m.Step()
	if _, after := rec.snapshot(); len(after) != len(before) {
		t.Errorf("cancelled run rendered %d more frames", len(after)-len(before))
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d after cancellation, want 0", m.Active())
	}
}

func TestStartWithCancelledContextRendersNothing(t *testing.T) {
	player, _, rec := newTestPlayer(0.99)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := player.Play(ctx, config("LATE", 3))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Play() error = %v, want context.Canceled", err)
	}
	if _, frames := rec.snapshot(); len(frames) != 0 {
		t.Errorf("rendered %d frames for a cancelled context", len(frames))
	}
}

func TestRendererErrorAbortsRun(t *testing.T) {
	player, m, rec := newTestPlayer(0.99)
	rec.failAt = 2

	run, err := player.Start(context.Background(), config("ABORT", 100))
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	drive(m, run.Done())

	if _, err := run.Wait(); err == nil {
		t.Fatal("Wait() returned nil error after a renderer failure")
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d, want the ticker stopped after the failure", m.Active())
	}
}

func TestStopCancelsActiveRun(t *testing.T) {
	player, m, _ := newTestPlayer(0.99)

	run, err := player.Start(context.Background(), config("STOP", 1000))
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	m.WaitForTickers(1, time.Second)
	player.Stop()
	player.Stop()

	if _, err := run.Wait(); !errors.Is(err, kerrors.ErrPlayerStopped) {
		t.Errorf("Wait() error = %v, want ErrPlayerStopped", err)
	}
}

func TestSequencePlaysEachConfig(t *testing.T) {
	player, m, rec := newTestPlayer(0.99)

	done := make(chan struct{})
	var results []*Result
	var seqErr error
	go func() {
		defer close(done)
		results, seqErr = player.Sequence(context.Background(), []reveal.Config{
			config("ONE", 0),
			config("TWO", 1),
		})
	}()
	drive(m, done)

	if seqErr != nil {
		t.Fatalf("Sequence failed: %v", seqErr)
	}
	if len(results) != 2 {
		t.Fatalf("Sequence returned %d results, want 2", len(results))
	}
	if results[0].Ticks != 1 || results[1].Ticks != 2 {
		t.Errorf("ticks = %d, %d; want 1 and 2", results[0].Ticks, results[1].Ticks)
	}

	_, frames := rec.snapshot()
	if frames[len(frames)-1] != "TWO" {
		t.Errorf("last frame = %q, want %q", frames[len(frames)-1], "TWO")
	}
}

func TestSequenceStopsAtFirstError(t *testing.T) {
	player, _, _ := newTestPlayer(0)

	bad := config("BAD", 1)
	bad.RevealProbability = 2
	results, err := player.Sequence(context.Background(), []reveal.Config{bad, config("NEVER", 1)})
	if !errors.Is(err, kerrors.ErrInvalidProbability) {
		t.Errorf("Sequence() error = %v, want ErrInvalidProbability", err)
	}
	if len(results) != 0 {
		t.Errorf("Sequence() returned %d results, want 0", len(results))
	}
}

func TestPlayWithRealClock(t *testing.T) {
	rec := &recorder{}
	cfg := config("REAL", 2)
	cfg.TickInterval = time.Millisecond
	player := New(reveal.NewEngine(reveal.NewSeededSource(1)), nil, rec, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := player.Play(ctx, cfg)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if result.Final.Frame() != "REAL" || result.Ticks > 3 {
		t.Errorf("final frame %q after %d ticks, want %q within 3 ticks", result.Final.Frame(), result.Ticks, "REAL")
	}
}
