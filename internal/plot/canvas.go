package plot

import (
	"strings"

	"github.com/san-kum/lvorbit/internal/orbit"
)

// Braille patterns: 2x4 dots per character cell, unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille sub-pixel canvas with a data-space frame, used for
// terminal phase portraits. Cell size is 2x4 sub-pixels, so an 80x24 canvas
// resolves 160x96 points.
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	// data frame mapped onto the sub-pixel grid
	minX, minY, spanX, spanY float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		spanX:  1,
		spanY:  1,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Frame sets the data-space window, padded by 5% on each side.
func (c *Canvas) Frame(minX, maxX, minY, maxY float64) {
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	c.minX = minX - spanX*0.05
	c.minY = minY - spanY*0.05
	c.spanX = spanX * 1.1
	c.spanY = spanY * 1.1
}

// Mark plots a data-space point. Points outside the frame are dropped.
func (c *Canvas) Mark(pt orbit.Point) {
	px := int(float64(c.Width*2-1) * (pt.Prey - c.minX) / c.spanX)
	py := int(float64(c.Height*4-1) * (pt.Predator - c.minY) / c.spanY)
	c.set(px, c.Height*4-1-py)
}

func (c *Canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas, keeping the frame.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
