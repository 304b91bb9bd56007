// Package clock provides the periodic timer that drives reveal playback.
//
// Real() wraps time.NewTicker. Manual is a controllable clock for tests:
// nothing happens until Step is called, and Step returns only after every
// live ticker has received its tick.
package clock
