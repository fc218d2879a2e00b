package body

import (
	"testing"

	"github.com/san-kum/gravbox/internal/geom"
)

func TestApplyGravity(t *testing.T) {
	b := New(geom.NewVec2(100, 100), geom.NewVec2(50, 50), geom.NewVec2(3, -2))

	b.ApplyGravity(0.5)

	v := b.Velocity()
	if v.Y != -1.5 {
		t.Errorf("expected vy -1.5, got %f", v.Y)
	}
	if v.X != 3 {
		t.Errorf("vx should be unchanged, got %f", v.X)
	}
}

func TestApplyAirResistance(t *testing.T) {
	b := New(geom.NewVec2(100, 100), geom.Vec2{}, geom.NewVec2(10, 7))

	b.ApplyAirResistance(0.995)

	v := b.Velocity()
	if v.X != 10*0.995 {
		t.Errorf("expected vx %f, got %f", 10*0.995, v.X)
	}
	if v.Y != 7 {
		t.Errorf("vy should be unchanged, got %f", v.Y)
	}
}

func TestDamp(t *testing.T) {
	b := New(geom.NewVec2(100, 100), geom.Vec2{}, geom.NewVec2(4, -10))

	b.DampX(0.9)
	if got := b.Velocity().X; got != -3.6 {
		t.Errorf("expected vx -3.6, got %f", got)
	}

	b.DampY(0.9)
	if got := b.Velocity().Y; got != 9.0 {
		t.Errorf("expected vy 9.0, got %f", got)
	}
}

func TestIntegrate(t *testing.T) {
	b := New(geom.NewVec2(100, 100), geom.NewVec2(270, 200), geom.NewVec2(2, -3))

	b.Integrate()

	p := b.Position()
	if p.X != 272 || p.Y != 197 {
		t.Errorf("expected (272, 197), got (%f, %f)", p.X, p.Y)
	}
	// Velocity is untouched by integration.
	v := b.Velocity()
	if v.X != 2 || v.Y != -3 {
		t.Errorf("velocity mutated: (%f, %f)", v.X, v.Y)
	}
}

func TestDefault(t *testing.T) {
	b := Default()

	if b.Size().X != DefaultSize || b.Size().Y != DefaultSize {
		t.Errorf("expected %vx%v, got %+v", DefaultSize, DefaultSize, b.Size())
	}
	if b.Color() != geom.White {
		t.Errorf("expected white, got %+v", b.Color())
	}
}

func TestSetters(t *testing.T) {
	b := Default()

	b.SetPositionX(12)
	b.SetPositionY(34)
	if p := b.Position(); p.X != 12 || p.Y != 34 {
		t.Errorf("expected (12, 34), got (%f, %f)", p.X, p.Y)
	}

	b.SetVelocity(geom.NewVec2(-1, 1))
	if v := b.Velocity(); v.X != -1 || v.Y != 1 {
		t.Errorf("expected (-1, 1), got (%f, %f)", v.X, v.Y)
	}

	c := geom.RGB(1, 2, 3)
	b.SetColor(c)
	if b.Color() != c {
		t.Errorf("expected %+v, got %+v", c, b.Color())
	}
}
