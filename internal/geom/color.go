package geom

import "github.com/lucasb-eyer/go-colorful"

// Color is an RGBA byte quadruple. The zero value is transparent black;
// use White for the default opaque white.
type Color struct {
	R, G, B, A uint8
}

// White is the default body and background color.
var White = Color{255, 255, 255, 255}

// RGB constructs an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// Hex renders the color as "#rrggbb" for terminal styling. Alpha is not
// representable in terminal colors and is dropped.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
