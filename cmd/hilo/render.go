// cmd/hilo/render.go
//
// Celebration rendering: projects the director's live elements onto a
// character grid. Positions are derived from each element's spawn
// point, velocity, and age, so the renderer holds no animation state.

package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"hilo/internal/celebrate"
)

func renderStage(d *celebrate.Director, w, h int) string {
	type cell struct {
		r     rune
		color string
	}
	grid := make([]cell, w*h)

	now := time.Now()
	for _, e := range d.Snapshot() {
		x, y := e.PosAt(now)
		cx, cy := int(x), int(y)
		if cx < 0 || cx >= w || cy < 0 || cy >= h {
			continue
		}
		r := glyph(e)
		grid[cy*w+cx] = cell{r: r, color: e.Color}
	}

	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid[y*w+x]
			if c.r == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Render(string(c.r)))
		}
		if y < h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func glyph(e celebrate.Element) rune {
	switch e.Kind {
	case celebrate.KindFlash:
		return '✺'
	case celebrate.KindSpark:
		return '•'
	default:
		if e.Shape != 0 {
			return e.Shape
		}
		return '▪'
	}
}
