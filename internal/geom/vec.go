// Package geom provides the small value types shared by the physics
// core and the renderers: a 2D vector and an RGBA color.
package geom

// Vec2 is a 2D vector used for positions, sizes and velocities.
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}
