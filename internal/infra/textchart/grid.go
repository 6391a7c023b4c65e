package textchart

import (
	"math"

	"github.com/aalvaropc/consumo/internal/domain"
)

type grid struct {
	w, h  int
	axes  domain.AxisBounds
	cells [][]cell
}

func newGrid(w, h int, axes domain.AxisBounds) *grid {
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
	}
	return &grid{w: w, h: h, axes: axes, cells: cells}
}

func (g *grid) inside(p domain.Point) bool {
	return p.X >= g.axes.XMin && p.X <= g.axes.XMax && p.Y >= g.axes.YMin && p.Y <= g.axes.YMax
}

// colRow maps a point inside the bounds to grid coordinates (row 0 is the top).
func (g *grid) colRow(p domain.Point) (int, int) {
	fx := (p.X - g.axes.XMin) / (g.axes.XMax - g.axes.XMin)
	fy := (p.Y - g.axes.YMin) / (g.axes.YMax - g.axes.YMin)
	col := int(math.Round(fx * float64(g.w-1)))
	row := g.h - 1 - int(math.Round(fy*float64(g.h-1)))
	return clamp(col, 0, g.w-1), clamp(row, 0, g.h-1)
}

func (g *grid) plot(p domain.Point, c cell) {
	if !g.inside(p) {
		return
	}
	col, row := g.colRow(p)
	g.mark(col, row, c)
}

// mark keeps the higher-priority cell; the series wins over the reference line.
func (g *grid) mark(col, row int, c cell) {
	if g.cells[row][col] < c {
		g.cells[row][col] = c
	}
}

// segment draws a straight line from a to b, clipped to the axes.
func (g *grid) segment(a, b domain.Point, c cell) {
	a, b, ok := clip(a, b, g.axes)
	if !ok {
		return
	}

	c0, r0 := g.colRow(a)
	c1, r1 := g.colRow(b)
	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		g.mark(c0, r0, c)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := clampPoint(domain.Point{
			X: a.X + t*(b.X-a.X),
			Y: a.Y + t*(b.Y-a.Y),
		}, g.axes)
		col, row := g.colRow(p)
		g.mark(col, row, c)
	}
}

// clip applies Liang–Barsky clipping of segment ab against the bounds.
func clip(a, b domain.Point, ax domain.AxisBounds) (domain.Point, domain.Point, bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, a.X - ax.XMin},
		{dx, ax.XMax - a.X},
		{-dy, a.Y - ax.YMin},
		{dy, ax.YMax - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	na := domain.Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	nb := domain.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	return clampPoint(na, ax), clampPoint(nb, ax), true
}

// clampPoint absorbs rounding left over from clipping.
func clampPoint(p domain.Point, ax domain.AxisBounds) domain.Point {
	return domain.Point{
		X: math.Min(math.Max(p.X, ax.XMin), ax.XMax),
		Y: math.Min(math.Max(p.Y, ax.YMin), ax.YMax),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
