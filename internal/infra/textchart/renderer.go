// Package textchart draws a consumption series on a character grid with
// fixed axis bounds, for terminals.
package textchart

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/ports"
)

const (
	DefaultWidth  = 60
	DefaultHeight = 18

	XLabel = "Disposable income (Y − T)"
	YLabel = "Consumption (C)"
	Legend = "C = c₀ + c₁·(Y − T)"

	seriesGlyph    = '•'
	referenceGlyph = '·'
)

type cell uint8

const (
	cellEmpty cell = iota
	cellReference
	cellSeries
)

type Renderer struct {
	width     int
	height    int
	reference bool

	seriesStyle    lipgloss.Style
	referenceStyle lipgloss.Style
	axisStyle      lipgloss.Style
}

type Option func(*Renderer)

// WithSize sets the plot area in cells. Values below 2 are ignored.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width >= 2 {
			r.width = width
		}
		if height >= 2 {
			r.height = height
		}
	}
}

// WithReferenceLine draws the 45° line C = YD behind the series.
func WithReferenceLine(enabled bool) Option {
	return func(r *Renderer) { r.reference = enabled }
}

func WithStyles(series, reference, axis lipgloss.Style) Option {
	return func(r *Renderer) {
		r.seriesStyle = series
		r.referenceStyle = reference
		r.axisStyle = axis
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:          DefaultWidth,
		height:         DefaultHeight,
		seriesStyle:    lipgloss.NewStyle().Bold(true),
		referenceStyle: lipgloss.NewStyle().Faint(true),
		axisStyle:      lipgloss.NewStyle().Faint(true),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// Render plots points (x = YD, y = C) joined by straight segments. Anything
// outside axes is clipped.
func (r *Renderer) Render(points []domain.Point, axes domain.AxisBounds) (string, error) {
	if err := axes.Validate(); err != nil {
		return "", err
	}

	g := newGrid(r.width, r.height, axes)

	if r.reference {
		lo := math.Max(axes.XMin, axes.YMin)
		hi := math.Min(axes.XMax, axes.YMax)
		if lo <= hi {
			g.segment(domain.Point{X: lo, Y: lo}, domain.Point{X: hi, Y: hi}, cellReference)
		}
	}

	switch len(points) {
	case 0:
	case 1:
		g.plot(points[0], cellSeries)
	default:
		for i := 1; i < len(points); i++ {
			g.segment(points[i-1], points[i], cellSeries)
		}
	}

	return r.layout(g, axes), nil
}

func (r *Renderer) layout(g *grid, axes domain.AxisBounds) string {
	top := formatTick(axes.YMax)
	bottom := formatTick(axes.YMin)
	margin := max(utf8.RuneCountInString(top), utf8.RuneCountInString(bottom))

	var b strings.Builder
	b.WriteString(r.axisStyle.Render(YLabel))
	b.WriteByte('\n')

	for row := 0; row < g.h; row++ {
		label := ""
		tick := "│"
		switch row {
		case 0:
			label, tick = top, "┤"
		case g.h - 1:
			label, tick = bottom, "┤"
		}
		b.WriteString(strings.Repeat(" ", margin-utf8.RuneCountInString(label)))
		b.WriteString(r.axisStyle.Render(label + " " + tick))
		b.WriteString(r.renderRow(g.cells[row]))
		b.WriteByte('\n')
	}

	pad := strings.Repeat(" ", margin+1)
	b.WriteString(pad)
	b.WriteString(r.axisStyle.Render("└" + strings.Repeat("─", g.w)))
	b.WriteByte('\n')

	left := formatTick(axes.XMin)
	right := formatTick(axes.XMax)
	gap := g.w + 1 - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(pad)
	b.WriteString(r.axisStyle.Render(left + strings.Repeat(" ", gap) + right))
	b.WriteByte('\n')

	b.WriteString(pad)
	b.WriteString(r.axisStyle.Render(XLabel))
	b.WriteByte('\n')

	b.WriteString(pad)
	b.WriteString(r.seriesStyle.Render(string(seriesGlyph)) + " " + Legend)
	if r.reference {
		b.WriteString("   " + r.referenceStyle.Render(string(referenceGlyph)) + " 45° line (C = Y − T)")
	}
	b.WriteByte('\n')

	return b.String()
}

// renderRow styles runs of equal cells together to keep escape sequences short.
func (r *Renderer) renderRow(cells []cell) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && cells[i] == cells[start] {
			continue
		}
		n := i - start
		switch cells[start] {
		case cellSeries:
			b.WriteString(r.seriesStyle.Render(strings.Repeat(string(seriesGlyph), n)))
		case cellReference:
			b.WriteString(r.referenceStyle.Render(strings.Repeat(string(referenceGlyph), n)))
		default:
			b.WriteString(strings.Repeat(" ", n))
		}
		start = i
	}
	return b.String()
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
