package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PolarWolf314/unveil/internal/reveal"
)

type fixedSource struct{ draw float64 }

func (f fixedSource) Float64() float64 { return f.draw }
func (f fixedSource) IntN(n int) int   { return 0 }

// states plays text sequentially from the start and returns every snapshot.
func states(t *testing.T, text string) []*reveal.State {
	t.Helper()
	cfg := reveal.DefaultConfig(text)
	cfg.Alphabet = "#"
	cfg.Sequential = true
	engine := reveal.NewEngine(fixedSource{draw: 0})

	state, err := engine.Start(cfg)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	all := []*reveal.State{state}
	for !state.Done() {
		state = engine.Tick(state)
		all = append(all, state)
	}
	return all
}

func TestFormatFrameWithoutColorKeepsWidth(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	for _, s := range states(t, "AB CD") {
		if got := FormatFrame(s); got != s.Frame() {
			t.Errorf("FormatFrame() = %q, want %q", got, s.Frame())
		}
	}
}

func TestFormatFrameColorsSegments(t *testing.T) {
	unsetNoColor(t)

	all := states(t, "ABCD")
	got := FormatFrame(all[2])
	want := Revealed.Sprint("AB") + Scrambled.Sprint("##")
	if got != want {
		t.Errorf("FormatFrame() = %q, want %q", got, want)
	}
}

func TestFrameRendererRedrawsInPlace(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	r := NewFrameRenderer(&buf, 80)

	for _, s := range states(t, "HI") {
		if err := r.Render(s); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
	}

	want := "\r\033[J##" + "\r\033[JH#" + "\r\033[JHI\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestFrameRendererMovesUpForMultilineFrames(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	r := NewFrameRenderer(&buf, 80)

	all := states(t, "A\nB\nC")
	for _, s := range all[:2] {
		if err := r.Render(s); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
	}

	out := buf.String()
	if strings.Count(out, "\033[2A") != 1 {
		t.Errorf("output %q should move the cursor up two lines exactly once", out)
	}
	if strings.HasPrefix(out, "\033[2A") {
		t.Errorf("first frame must not move the cursor up, got %q", out)
	}
}

func TestFrameRendererAccountsForWrappedLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name   string
		text   string
		width  int
		wantUp string
	}{
		{"wraps onto three rows", strings.Repeat("W", 25), 10, "\033[2A"},
		{"exactly fills the width", strings.Repeat("W", 10), 10, ""},
		{"wrapped line inside a multiline frame", "AB\n" + strings.Repeat("W", 15), 10, "\033[2A"},
		{"unknown width", strings.Repeat("W", 25), 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewFrameRenderer(&buf, tt.width)

			all := states(t, tt.text)
			for _, s := range all[:2] {
				if err := r.Render(s); err != nil {
					t.Fatalf("Render failed: %v", err)
				}
			}

			out := buf.String()
			second := out[strings.LastIndex(out, "\r\033[J")-len(tt.wantUp):]
			if !strings.HasPrefix(second, tt.wantUp+"\r\033[J") {
				t.Errorf("second frame should start with %q, output = %q", tt.wantUp+"\r\033[J", out)
			}
			if tt.wantUp == "" && strings.Count(out, "\033[") != strings.Count(out, "\033[J") {
				t.Errorf("output %q should not move the cursor up", out)
			}
		})
	}
}

func TestLineRendererPrintsEveryFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewLineRenderer(&buf)
	for _, s := range states(t, "OK") {
		if err := r.Render(s); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
	}
	if buf.String() != "##\nO#\nOK\n" {
		t.Errorf("output = %q, want %q", buf.String(), "##\nO#\nOK\n")
	}
}

func TestFinalRendererPrintsOnlyCompletedFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewFinalRenderer(&buf)
	for _, s := range states(t, "DONE") {
		if err := r.Render(s); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
	}
	if buf.String() != "DONE\n" {
		t.Errorf("output = %q, want %q", buf.String(), "DONE\n")
	}
}
