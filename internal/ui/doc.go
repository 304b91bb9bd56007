// Package ui formats unveil's terminal output.
//
// Semantic formatters colour command output when the terminal supports it
// and fall back to plain text decorations when NO_COLOR is set or colour
// detection fails:
//
//	ui.Code.Sprint("unveil play")   // `unveil play` without colour
//	ui.Highlight.Sprint("matrix")   // 'matrix' without colour
//	ui.Success.Sprint("✓")
//
// Frame renderers display reveal states. FrameRenderer redraws in place on
// a terminal, LineRenderer prints one frame per line and FinalRenderer prints
// only the completed text. Revealed characters use the Revealed colour and
// scrambled ones the Scrambled colour; neither adds decorations, so frames
// keep their width without colour.
//
// Banner turns text into FIGlet art with go-figure so the art itself can be
// revealed.
package ui
