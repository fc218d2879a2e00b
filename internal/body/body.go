// Package body defines the simulated rectangular body: size, position,
// velocity and color, with the per-frame physics mutators applied by the
// driver.
package body

import "github.com/san-kum/gravbox/internal/geom"

// DefaultSize is the edge length of a zero-configured body.
const DefaultSize = 10.0

// Body is a mutable entity. Size is constant for the body's lifetime;
// position and velocity change every frame.
type Body struct {
	size     geom.Vec2
	position geom.Vec2
	velocity geom.Vec2
	color    geom.Color
}

// New constructs a body with the given size, position and velocity and
// the default opaque white color.
func New(size, position, velocity geom.Vec2) Body {
	return Body{
		size:     size,
		position: position,
		velocity: velocity,
		color:    geom.White,
	}
}

// Default constructs a 10×10 body at the origin, at rest.
func Default() Body {
	return New(geom.NewVec2(DefaultSize, DefaultSize), geom.Vec2{}, geom.Vec2{})
}

func (b *Body) Size() geom.Vec2     { return b.size }
func (b *Body) Position() geom.Vec2 { return b.position }
func (b *Body) Velocity() geom.Vec2 { return b.velocity }
func (b *Body) Color() geom.Color   { return b.color }

func (b *Body) SetSize(s geom.Vec2)     { b.size = s }
func (b *Body) SetPosition(p geom.Vec2) { b.position = p }
func (b *Body) SetPositionX(x float64)  { b.position.X = x }
func (b *Body) SetPositionY(y float64)  { b.position.Y = y }
func (b *Body) SetVelocity(v geom.Vec2) { b.velocity = v }
func (b *Body) SetColor(c geom.Color)   { b.color = c }

// ApplyGravity accelerates the body downward.
func (b *Body) ApplyGravity(g float64) {
	b.velocity.Y += g
}

// ApplyAirResistance decays horizontal velocity multiplicatively. It is
// applied unconditionally every frame, not as a conditional drag force.
func (b *Body) ApplyAirResistance(k float64) {
	b.velocity.X *= k
}

// DampX reverses horizontal velocity with energy loss d.
func (b *Body) DampX(d float64) {
	b.velocity.X *= -d
}

// DampY reverses vertical velocity with energy loss d.
func (b *Body) DampY(d float64) {
	b.velocity.Y *= -d
}

// Integrate advances position by one explicit Euler step with an
// implicit unit timestep of one frame.
func (b *Body) Integrate() {
	b.position = b.position.Add(b.velocity)
}
