package ui

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// DefaultFont is the FIGlet font used when none is requested or the
// requested one is unknown.
const DefaultFont = "standard"

// Banner renders text as FIGlet art. Trailing blank lines are dropped so the
// art can be revealed without an empty tail.
func Banner(text, font string) string {
	lines, ok := figureLines(text, font)
	if !ok {
		lines, _ = figureLines(text, DefaultFont)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// KnownFont reports whether go-figure ships a font with the given name.
func KnownFont(font string) bool {
	_, ok := figureLines("a", font)
	return ok
}

// figureLines renders text with font. go-figure panics on unknown fonts.
func figureLines(text, font string) (lines []string, ok bool) {
	defer func() {
		if recover() != nil {
			lines, ok = nil, false
		}
	}()
	fig := figure.NewFigure(text, font, false)
	return strings.Split(fig.String(), "\n"), true
}
