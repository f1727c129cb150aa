package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/lvorbit/internal/orbit"
)

// Renderer writes SVG scatter plots of traced orbits into OutDir, creating
// the directory on first use.
type Renderer struct {
	OutDir string
	Width  int
	Height int
}

func NewRenderer(outDir string, width, height int) *Renderer {
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 640
	}
	return &Renderer{OutDir: outDir, Width: width, Height: height}
}

// Render writes one plot file named <name>.svg and returns its path. Axes
// share one data scale so the closed orbit keeps its true shape.
func (r *Renderer) Render(name, title string, points []orbit.Point) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("plot %q: no points to render", name)
	}

	if err := os.MkdirAll(r.OutDir, 0755); err != nil {
		return "", fmt.Errorf("create plot directory: %w", err)
	}

	path := filepath.Join(r.OutDir, name+".svg")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create plot file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(r.scatterSVG(title, points)); err != nil {
		return "", fmt.Errorf("write plot file: %w", err)
	}

	return path, nil
}

func (r *Renderer) scatterSVG(title string, points []orbit.Point) string {
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

	// Equal aspect: stretch the narrower range around its midpoint.
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	scaleX := rangeX / float64(r.Width)
	scaleY := rangeY / float64(r.Height)
	if scaleX > scaleY {
		mid := (minY + maxY) / 2
		rangeY = scaleX * float64(r.Height)
		minY = mid - rangeY/2
		maxY = mid + rangeY/2
	} else {
		mid := (minX + maxX) / 2
		rangeX = scaleY * float64(r.Width)
		minX = mid - rangeX/2
		maxX = mid + rangeX/2
	}

	// 10% padding on every side
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="%d" y="20" fill="#cccccc" font-family="monospace" font-size="14" text-anchor="middle">%s</text>
<text x="%d" y="%d" fill="#888888" font-family="monospace" font-size="11" text-anchor="middle">Prey population</text>
<text x="14" y="%d" fill="#888888" font-family="monospace" font-size="11" text-anchor="middle" transform="rotate(-90 14 %d)">Predator population</text>
<g fill="#00ff88">
`,
		r.Width, r.Height, r.Width, r.Height,
		r.Width/2, title,
		r.Width/2, r.Height-8,
		r.Height/2, r.Height/2))

	for _, p := range points {
		x := (p.Prey - minX) / rangeX * float64(r.Width)
		y := float64(r.Height) - (p.Predator-minY)/rangeY*float64(r.Height)
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"0.8\"/>\n", x, y))
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
