// Package render defines the capability interface between the headless
// simulation core and a concrete renderer, plus the frame loop that
// drives both. The physics core never imports a graphics library;
// renderers implement Surface.
package render

import (
	"context"
	"time"

	"github.com/san-kum/gravbox/internal/geom"
	"github.com/san-kum/gravbox/internal/sim"
	"github.com/san-kum/gravbox/internal/world"
)

// Event is a discrete input signal delivered by a Surface.
type Event int

const (
	// Quit ends the frame loop.
	Quit Event = iota
	// Reset discards and respawns the body collection.
	Reset
)

// Surface is the drawing and input facility a renderer must provide.
// PollEvents is non-blocking and drains all pending events.
type Surface interface {
	Clear(c geom.Color)
	FillRect(x, y, w, h float64, c geom.Color)
	Present()
	PollEvents() []Event
	Sleep(d time.Duration)
}

// Loop runs the frame loop until a Quit event or context cancellation:
// poll input, maybe reset, render the current state, advance physics,
// sleep. Rendering happens before the update so the spawn frame is
// visible.
func Loop(ctx context.Context, d *sim.Driver, s Surface) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for _, ev := range s.PollEvents() {
			switch ev {
			case Quit:
				return nil
			case Reset:
				d.Reset()
			}
		}

		s.Clear(geom.White)
		bodies := d.Bodies()
		for i := range bodies {
			p := bodies[i].Position()
			sz := bodies[i].Size()
			s.FillRect(p.X, p.Y, sz.X, sz.Y, bodies[i].Color())
		}
		s.Present()

		d.Step()
		s.Sleep(world.FrameDelay)
	}
}
