// Package sim implements the simulation driver: the per-frame
// integration and collision-response pass over the body collection, the
// reset operation, and a headless stepping loop for recordings.
package sim

import (
	"math/rand"

	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/geom"
	"github.com/san-kum/gravbox/internal/world"
)

// Driver owns the body collection exclusively. All phases of a frame run
// sequentially; Driver is not safe for concurrent use.
type Driver struct {
	params    world.Params
	width     float64
	height    float64
	bodies    []body.Body
	rng       *rand.Rand
	observers []Observer
	frame     int
}

// New creates a driver over a width×height arena and spawns the initial
// body collection from the process-wide random source.
func New(params world.Params, width, height float64) *Driver {
	return NewWithRand(params, width, height, processSource())
}

// NewWithRand is New with an injected random source, for reproducible
// headless runs and tests.
func NewWithRand(params world.Params, width, height float64, rng *rand.Rand) *Driver {
	d := &Driver{
		params: params,
		width:  width,
		height: height,
		rng:    rng,
	}
	d.Reset()
	return d
}

// Bodies returns the live collection for read-only iteration within a
// frame. Callers must not retain the slice across a Reset.
func (d *Driver) Bodies() []body.Body { return d.bodies }

func (d *Driver) Params() world.Params { return d.params }

// Frame returns the number of completed update passes since the last
// reset.
func (d *Driver) Frame() int { return d.frame }

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Reset discards the whole collection and spawns a fresh one: four
// 100×100 bodies at the arena center with randomized velocity and color.
func (d *Driver) Reset() {
	d.bodies = make([]body.Body, 0, world.NumBodies)
	center := geom.NewVec2(d.width/2, d.height/2)
	size := geom.NewVec2(world.BodySize, world.BodySize)
	for i := 0; i < world.NumBodies; i++ {
		b := body.New(size, center, RandomVelocity(d.rng))
		b.SetColor(RandomColor(d.rng))
		d.bodies = append(d.bodies, b)
	}
	d.frame = 0
}

// Step advances every body by one frame and notifies observers.
func (d *Driver) Step() {
	for i := range d.bodies {
		d.updateBody(&d.bodies[i])
	}
	d.frame++
	for _, o := range d.observers {
		o.OnFrame(d.frame, d.bodies)
	}
}

// updateBody applies the per-frame update in its fixed order: gravity,
// air resistance, integration, then boundary corrections against the
// post-integration position (walls, then floor, then ceiling). The
// boundary tests are independent; more than one may fire in a frame.
func (d *Driver) updateBody(b *body.Body) {
	b.ApplyGravity(d.params.Gravity)
	b.ApplyAirResistance(d.params.AirResistance)
	b.Integrate()

	pos := b.Position()
	size := b.Size()

	onRightWall := pos.X >= d.width-size.X
	onLeftWall := pos.X <= 0
	onFloor := pos.Y >= d.height-size.Y
	onCeiling := pos.Y <= 0

	if onLeftWall || onRightWall {
		if onLeftWall {
			b.SetPositionX(0)
		}
		if onRightWall {
			b.SetPositionX(d.width - size.X)
		}
		b.DampX(d.params.Damping)
		b.SetColor(RandomColor(d.rng))
	}

	if onFloor {
		b.SetPositionY(d.height - size.Y)
		if b.Velocity().Y > world.RestThreshold {
			b.DampY(d.params.Damping)
			b.SetColor(RandomColor(d.rng))
		} else {
			// Resting contact: ground friction, vertical velocity zeroed.
			v := b.Velocity()
			b.SetVelocity(geom.NewVec2(v.X*world.GroundFriction, 0))
		}
	}

	if onCeiling {
		b.SetPositionY(0)
		b.DampY(d.params.Damping)
		b.SetColor(RandomColor(d.rng))
	}
}
