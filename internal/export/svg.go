// Package export renders trajectories to SVG and PNG files.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/macrospin/internal/llg"
)

// Point is one sample of a 2D series.
type Point struct {
	X, Y float64
}

// PolarVsTime extracts the (time, polar angle) series of a trajectory.
func PolarVsTime(traj *llg.Trajectory) []Point {
	pts := make([]Point, traj.Len())
	for i, p := range traj.Points {
		pts[i] = Point{X: traj.Times[i], Y: p.Pol}
	}
	return pts
}

// AziVsPolar extracts the (polar, azimuth) series of a trajectory.
func AziVsPolar(traj *llg.Trajectory) []Point {
	pts := make([]Point, traj.Len())
	for i, p := range traj.Points {
		pts[i] = Point{X: p.Pol, Y: p.Azi}
	}
	return pts
}

// SeriesToSVG renders a 2D series as an SVG polyline on a dark
// background, autoscaled with 10% padding.
func SeriesToSVG(points []Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
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
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
