// Package gui renders the simulation in a native window using Raylib,
// implementing the render.Surface capability interface.
package gui

import (
	"context"
	"errors"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/gravbox/internal/geom"
	"github.com/san-kum/gravbox/internal/render"
	"github.com/san-kum/gravbox/internal/sim"
	"github.com/san-kum/gravbox/internal/world"
)

// ErrWindowInit is the single fatal failure mode: the window or drawing
// context could not be created.
var ErrWindowInit = errors.New("gui: window initialization failed")

type surface struct{}

func toRaylib(c geom.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (surface) Clear(c geom.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(c))
}

func (surface) FillRect(x, y, w, h float64, c geom.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toRaylib(c))
}

func (surface) Present() {
	rl.EndDrawing()
}

func (surface) PollEvents() []render.Event {
	var evs []render.Event
	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ) {
		evs = append(evs, render.Quit)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		evs = append(evs, render.Reset)
	}
	return evs
}

func (surface) Sleep(d time.Duration) {
	time.Sleep(d)
}

func initWindow() error {
	rl.InitWindow(world.ScreenWidth, world.ScreenHeight, "gravbox")
	if !rl.IsWindowReady() {
		return ErrWindowInit
	}
	rl.SetExitKey(0)
	// Pacing comes from the frame loop's fixed sleep, not raylib.
	rl.SetTargetFPS(0)
	return nil
}

// Run opens the 640×480 window and drives the simulation until quit. It
// returns ErrWindowInit if the window cannot be created.
func Run(ctx context.Context) error {
	if err := initWindow(); err != nil {
		return err
	}
	defer rl.CloseWindow()

	d := sim.New(world.Default(), world.ScreenWidth, world.ScreenHeight)
	return render.Loop(ctx, d, surface{})
}
