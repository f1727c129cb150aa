package plot

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lvorbit/internal/orbit"
)

// BranchGraph renders one quadrant branch (predator as a function of prey)
// as a terminal line graph.
func BranchGraph(points []orbit.Point, caption string) string {
	if len(points) == 0 {
		return ""
	}
	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.Predator
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// Portrait renders the full orbit as a Braille phase portrait sized for a
// standard terminal.
func Portrait(points []orbit.Point) string {
	if len(points) == 0 {
		return ""
	}
	minX, maxX := points[0].Prey, points[0].Prey
	minY, maxY := points[0].Predator, points[0].Predator
	for _, p := range points {
		if p.Prey < minX {
			minX = p.Prey
		}
		if p.Prey > maxX {
			maxX = p.Prey
		}
		if p.Predator < minY {
			minY = p.Predator
		}
		if p.Predator > maxY {
			maxY = p.Predator
		}
	}

	c := NewCanvas(80, 24)
	c.Frame(minX, maxX, minY, maxY)
	for _, p := range points {
		c.Mark(p)
	}
	return c.String()
}
