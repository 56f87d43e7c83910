package viz

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille pixel grid with one colour per cell. The last colour
// written to any dot of a cell wins.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.NRGBA
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.NRGBA, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.NRGBA, w)
	}
	c.Clear()
	return c
}

// PixelSize is the canvas size in dots.
func (c *Canvas) PixelSize() (int, int) {
	return c.Width * 2, c.Height * 4
}

// Set lights the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 {
		return
	}

	cell, row := x/2, y/4
	if cell >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][cell] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][cell] = col
}

// Lit reports whether the dot at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = color.NRGBA{}
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.NRGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
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

// FillTriangle lights every dot whose centre lies inside the triangle, for
// either winding.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 float64, col color.NRGBA) {
	w, h := c.PixelSize()
	minX := max(int(math.Floor(min(x0, x1, x2))), 0)
	maxX := min(int(math.Ceil(max(x0, x1, x2))), w-1)
	minY := max(int(math.Floor(min(y0, y1, y2))), 0)
	maxY := min(int(math.Ceil(max(y0, y1, y2))), h-1)

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(x1, y1, x2, y2, px, py) / area
			w1 := edge(x2, y2, x0, y0, px, py) / area
			w2 := edge(x0, y0, x1, y1, px, py) / area
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				c.Set(x, y, col)
			}
		}
	}
}

// DrawCircle plots the outline of a circle of radius r dots.
func (c *Canvas) DrawCircle(cx, cy, r float64, col color.NRGBA) {
	steps := max(int(2*math.Pi*r), 8)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Set(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))), col)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render draws the canvas with cell colours on background bg. Runs of cells
// sharing a colour are styled together.
func (c *Canvas) Render(bg lipgloss.Color) string {
	base := lipgloss.NewStyle().Background(bg)
	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Colors[row][col] == c.Colors[row][start] {
				continue
			}
			run := string(c.Grid[row][start:col])
			fg := c.Colors[row][start]
			if fg.A == 0 {
				b.WriteString(base.Render(run))
			} else {
				b.WriteString(base.Foreground(lipgloss.Color(hexColor(fg))).Render(run))
			}
			start = col
		}
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
