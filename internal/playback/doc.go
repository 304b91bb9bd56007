// Package playback drives reveal runs with a clock and a renderer.
//
// A Player owns at most one active run. Starting a new run cancels the
// previous one and waits for its goroutine to exit before the new run renders
// its first frame, so a superseded run can never draw over the current text.
// A run stops its ticker as soon as the engine reports completion.
//
//	player := playback.New(reveal.NewEngine(nil), clock.Real(), renderer, playback.Options{})
//	result, err := player.Play(ctx, reveal.DefaultConfig("WELCOME"))
package playback
