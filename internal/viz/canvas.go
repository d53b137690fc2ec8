package viz

import (
	"math"
	"strings"
)

const brailleBlank = 0x2800

// Braille dot bits, indexed [row][col] within one cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of Braille cells. Drawing happens in sub-pixel
// coordinates, two columns and four rows per cell, origin top-left.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Size returns the canvas size in sub-pixels.
func (c *Canvas) Size() (w, h int) { return c.Width * 2, c.Height * 4 }

// Set lights the sub-pixel at (x, y). Out-of-range points are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&pixelMap[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine uses Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawEllipse outlines an ellipse centred on (cx, cy) with semi-axes a and b,
// the a axis rotated by angle radians (counter-clockwise, y up).
func (c *Canvas) DrawEllipse(cx, cy, a, b, angle float64) {
	const segments = 24
	cosA, sinA := math.Cos(angle), math.Sin(angle)

	point := func(k int) (int, int) {
		phi := 2 * math.Pi * float64(k) / segments
		ex, ey := a*math.Cos(phi), b*math.Sin(phi)
		x := cx + ex*cosA - ey*sinA
		y := cy - (ex*sinA + ey*cosA)
		return int(math.Round(x)), int(math.Round(y))
	}

	px, py := point(0)
	for k := 1; k <= segments; k++ {
		x, y := point(k)
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
