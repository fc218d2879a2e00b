// Package world holds the fixed constants of the arena. None of these
// are runtime-configurable: the simulation is defined over exactly this
// world.
package world

import "time"

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	// NumBodies is the size of the body collection; it is recreated
	// wholesale on every reset.
	NumBodies = 4

	// BodySize is the edge length of the squares spawned by the driver.
	BodySize = 100.0

	// RestThreshold is the vertical speed below which a floor contact is
	// treated as resting rather than a bounce. The comparison is strict:
	// exactly 0.5 rests.
	RestThreshold = 0.5

	// GroundFriction decays horizontal velocity while resting on the floor.
	GroundFriction = 0.95

	// FrameDelay paces the frame loop (~66Hz, not wall-clock locked).
	FrameDelay = 15 * time.Millisecond
)

// Params are the world physics constants, set once at startup and never
// mutated afterwards.
type Params struct {
	Gravity       float64
	Damping       float64
	AirResistance float64
}

func Default() Params {
	return Params{
		Gravity:       0.5,
		Damping:       0.9,
		AirResistance: 0.995,
	}
}
