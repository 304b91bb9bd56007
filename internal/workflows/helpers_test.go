package workflows

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/PolarWolf314/unveil/internal/clock"
	"github.com/PolarWolf314/unveil/internal/configs"
	"github.com/PolarWolf314/unveil/internal/reveal"
)

// useTempSettings points the config and data directories at a temp dir.
func useTempSettings(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	original := configs.UserUnveilSettings
	configs.UserUnveilSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempDir, "config"),
		UserDataPath:    filepath.Join(tempDir, "data"),
	}
	t.Cleanup(func() {
		configs.UserUnveilSettings = original
	})
}

// autoClock returns a manual clock that is stepped in the background until
// the test ends.
func autoClock(t *testing.T) *clock.Manual {
	t.Helper()
	m := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if m.Step() == 0 {
				time.Sleep(time.Millisecond)
			}
		}
	}()
	t.Cleanup(func() {
		close(stop)
		wg.Wait()
	})
	return m
}

type frameRecorder struct {
	mu     sync.Mutex
	frames []string
}

func (r *frameRecorder) Render(s *reveal.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, s.Frame())
	return nil
}

func (r *frameRecorder) Frames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.frames...)
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func durationPtr(v time.Duration) *time.Duration {
	return &v
}

func uint64Ptr(v uint64) *uint64 {
	return &v
}
