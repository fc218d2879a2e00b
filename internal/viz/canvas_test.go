package viz

import "testing"

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected 0x2801, got %x", c.Grid[0][0])
	}

	// Out-of-range dots are ignored, not a panic.
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(100, 100)
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(2, 1)

	// One full cell is 2x4 dots; filling it lights all eight.
	c.FillRect(0, 0, 2, 4)
	if c.Grid[0][0] != 0x28ff {
		t.Errorf("expected full cell 0x28ff, got %x", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2800 {
		t.Errorf("neighbor cell should be empty, got %x", c.Grid[0][1])
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.FillRect(0, 0, 6, 12)

	c.Clear()

	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != 0x2800 {
				t.Fatalf("cell (%d,%d) not cleared: %x", i, j, c.Grid[i][j])
			}
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(2, 2)
	out := c.String()

	// Two rows of two cells, each row newline-terminated.
	if len([]rune(out)) != 6 {
		t.Errorf("expected 6 runes, got %d (%q)", len([]rune(out)), out)
	}
}
