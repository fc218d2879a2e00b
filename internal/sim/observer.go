package sim

import (
	"context"

	"github.com/san-kum/gravbox/internal/body"
)

// Observer is notified after every completed update pass.
type Observer interface {
	OnFrame(frame int, bodies []body.Body)
}

// Recorder collects per-frame body state for storage and export. Each
// row is the frame's bodies flattened as x, y, vx, vy.
type Recorder struct {
	Frames [][]float64
}

func NewRecorder(capacity int) *Recorder {
	return &Recorder{Frames: make([][]float64, 0, capacity)}
}

func (r *Recorder) OnFrame(frame int, bodies []body.Body) {
	row := make([]float64, 0, len(bodies)*4)
	for i := range bodies {
		p := bodies[i].Position()
		v := bodies[i].Velocity()
		row = append(row, p.X, p.Y, v.X, v.Y)
	}
	r.Frames = append(r.Frames, row)
}

// Run steps the driver for the given number of frames, checking for
// cancellation at each frame boundary.
func (d *Driver) Run(ctx context.Context, frames int) error {
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		d.Step()
	}
	return nil
}
