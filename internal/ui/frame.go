package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PolarWolf314/unveil/internal/reveal"
)

// FormatFrame colours the frame of s, grouping consecutive characters with
// the same reveal status so each group costs one escape sequence.
func FormatFrame(s *reveal.State) string {
	runes := s.Runes()
	var b strings.Builder
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && s.IsRevealed(i) == s.IsRevealed(start) {
			continue
		}
		segment := string(runes[start:i])
		if s.IsRevealed(start) {
			b.WriteString(Revealed.Sprint(segment))
		} else {
			b.WriteString(Scrambled.Sprint(segment))
		}
		start = i
	}
	return b.String()
}

// FrameRenderer redraws each frame in place on a terminal. Multi-line
// frames, and lines wrapped by a terminal narrower than the frame, move the
// cursor back up before redrawing.
type FrameRenderer struct {
	w     io.Writer
	width int
	rows  int
}

// NewFrameRenderer returns a FrameRenderer writing to w. width is the
// terminal width in columns; zero or less disables wrap accounting.
func NewFrameRenderer(w io.Writer, width int) *FrameRenderer {
	return &FrameRenderer{w: w, width: width}
}

// Render implements playback.Renderer.
func (r *FrameRenderer) Render(s *reveal.State) error {
	var b strings.Builder
	if r.rows > 1 {
		fmt.Fprintf(&b, "\033[%dA", r.rows-1)
	}
	// Return to column zero and clear to the end of the screen.
	b.WriteString("\r\033[J")
	b.WriteString(FormatFrame(s))
	if s.Done() {
		b.WriteString("\n")
		r.rows = 0
	} else {
		r.rows = r.countRows(s.Frame())
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// countRows returns the number of terminal rows frame occupies. A line that
// exactly fills the width leaves the cursor on its last column, so it takes
// one row.
func (r *FrameRenderer) countRows(frame string) int {
	rows := 0
	for _, line := range strings.Split(frame, "\n") {
		n := utf8.RuneCountInString(line)
		if r.width <= 0 || n <= r.width {
			rows++
			continue
		}
		rows += (n + r.width - 1) / r.width
	}
	return rows
}

// LineRenderer prints every frame on its own line without colour.
type LineRenderer struct {
	w io.Writer
}

// NewLineRenderer returns a LineRenderer writing to w.
func NewLineRenderer(w io.Writer) *LineRenderer {
	return &LineRenderer{w: w}
}

// Render implements playback.Renderer.
func (r *LineRenderer) Render(s *reveal.State) error {
	_, err := io.WriteString(r.w, s.Frame()+"\n")
	return err
}

// FinalRenderer prints only the completed frame. It suits output that is
// not a terminal, where intermediate frames would be noise.
type FinalRenderer struct {
	w io.Writer
}

// NewFinalRenderer returns a FinalRenderer writing to w.
func NewFinalRenderer(w io.Writer) *FinalRenderer {
	return &FinalRenderer{w: w}
}

// Render implements playback.Renderer.
func (r *FinalRenderer) Render(s *reveal.State) error {
	if !s.Done() {
		return nil
	}
	_, err := io.WriteString(r.w, EnsureNewline(s.Frame()))
	return err
}
