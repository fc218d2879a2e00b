package render

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/san-kum/gravbox/internal/geom"
	"github.com/san-kum/gravbox/internal/sim"
	"github.com/san-kum/gravbox/internal/world"
)

// fakeSurface feeds a scripted event sequence and records draw calls.
type fakeSurface struct {
	script   [][]Event
	frame    int
	clears   int
	rects    int
	presents int
	slept    time.Duration
}

func (f *fakeSurface) Clear(c geom.Color) { f.clears++ }

func (f *fakeSurface) Present() { f.presents++ }

func (f *fakeSurface) Sleep(d time.Duration) { f.slept += d }

func (f *fakeSurface) FillRect(x, y, w, h float64, c geom.Color) { f.rects++ }

func (f *fakeSurface) PollEvents() []Event {
	if f.frame >= len(f.script) {
		return []Event{Quit}
	}
	evs := f.script[f.frame]
	f.frame++
	return evs
}

func newDriver() *sim.Driver {
	return sim.NewWithRand(world.Default(), world.ScreenWidth, world.ScreenHeight, rand.New(rand.NewSource(11)))
}

func TestLoopQuit(t *testing.T) {
	s := &fakeSurface{script: [][]Event{nil, nil, nil}}
	d := newDriver()

	if err := Loop(context.Background(), d, s); err != nil {
		t.Fatalf("loop failed: %v", err)
	}

	// Three rendered frames, one rect per body, then quit before drawing.
	if s.presents != 3 {
		t.Errorf("expected 3 presents, got %d", s.presents)
	}
	if s.rects != 3*world.NumBodies {
		t.Errorf("expected %d rects, got %d", 3*world.NumBodies, s.rects)
	}
	if d.Frame() != 3 {
		t.Errorf("expected 3 physics frames, got %d", d.Frame())
	}
	if s.slept != 3*world.FrameDelay {
		t.Errorf("expected %v slept, got %v", 3*world.FrameDelay, s.slept)
	}
}

func TestLoopReset(t *testing.T) {
	s := &fakeSurface{script: [][]Event{nil, nil, {Reset}}}
	d := newDriver()

	if err := Loop(context.Background(), d, s); err != nil {
		t.Fatalf("loop failed: %v", err)
	}

	// The reset frame still renders and steps, so the counter is 1.
	if d.Frame() != 1 {
		t.Errorf("expected frame counter 1 after reset frame, got %d", d.Frame())
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &fakeSurface{}
	if err := Loop(ctx, newDriver(), s); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if s.presents != 0 {
		t.Errorf("expected no rendering after cancel, got %d presents", s.presents)
	}
}
