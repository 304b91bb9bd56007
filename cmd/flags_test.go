package cmd

import (
	"errors"
	"testing"
	"time"

	kerrors "github.com/PolarWolf314/unveil/internal/errors"
	"github.com/PolarWolf314/unveil/internal/reveal"
	"github.com/spf13/pflag"
)

func TestDirectionFlag(t *testing.T) {
	tests := []struct {
		input   string
		want    reveal.Direction
		wantErr bool
	}{
		{"start", reveal.DirectionStart, false},
		{"END", reveal.DirectionEnd, false},
		{"center", reveal.DirectionCenter, false},
		{"centre", reveal.DirectionCenter, false},
		{"diagonal", reveal.DirectionStart, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f directionFlag
			err := f.Set(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, kerrors.ErrUnknownDirection) {
					t.Errorf("Expected ErrUnknownDirection, got %v", err)
				}
				return
			}
			if f.value != tt.want || f.String() != tt.want.String() {
				t.Errorf("Set(%q) = %s, want %s", tt.input, f.value, tt.want)
			}
		})
	}

	var f directionFlag
	if f.Type() != "direction" {
		t.Errorf("Type() = %q, want direction", f.Type())
	}
}

func newRevealFlagSet() (*revealFlags, *pflag.FlagSet) {
	r := &revealFlags{}
	r.reset()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	r.register(fs)
	return r, fs
}

func TestRevealFlagsOnlyChangedOverride(t *testing.T) {
	r, fs := newRevealFlagSet()
	if err := fs.Parse([]string{"--interval", "20ms", "--alphabet", "xy"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	o := r.overrides(fs)
	if o.TickInterval == nil || *o.TickInterval != 20*time.Millisecond {
		t.Errorf("Expected interval override of 20ms, got %v", o.TickInterval)
	}
	if o.Alphabet == nil || *o.Alphabet != "xy" {
		t.Errorf("Expected alphabet override xy, got %v", o.Alphabet)
	}
	if o.MaxIterations != nil || o.Sequential != nil || o.Direction != nil || o.RevealProbability != nil || o.OriginalCharsOnly != nil {
		t.Errorf("Unexpected overrides for unset flags: %+v", o)
	}
}

func TestRevealFlagsDirectionImpliesSequential(t *testing.T) {
	r, fs := newRevealFlagSet()
	if err := fs.Parse([]string{"--direction", "end"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	o := r.overrides(fs)
	if o.Direction == nil || *o.Direction != reveal.DirectionEnd {
		t.Fatalf("Expected end direction override, got %v", o.Direction)
	}
	if o.Sequential == nil || !*o.Sequential {
		t.Errorf("Expected --direction to imply --sequential")
	}

	r, fs = newRevealFlagSet()
	if err := fs.Parse([]string{"--direction", "end", "--sequential=false"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if o := r.overrides(fs); o.Sequential == nil || *o.Sequential {
		t.Errorf("Expected explicit --sequential=false to win")
	}
}

func TestRevealFlagsNoneSet(t *testing.T) {
	r, fs := newRevealFlagSet()
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if o := r.overrides(fs); !o.IsZero() {
		t.Errorf("Expected no overrides, got %+v", o)
	}
}
