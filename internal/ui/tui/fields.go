package tui

import (
	"math"

	"github.com/aalvaropc/consumo/internal/domain"
)

// field is one adjustable entry of the parameter panel.
type field struct {
	label    string
	delta    float64
	decimals int
	min      float64
	max      float64
	ref      func(p *domain.Params, a *domain.AxisBounds) *float64
}

// firstAxisField is the index of the first chart-axis entry in fields.
const firstAxisField = 6

var fields = []field{
	{label: "c₀  autonomous consumption", delta: 10, decimals: 2, min: math.Inf(-1), max: math.Inf(1),
		ref: func(p *domain.Params, _ *domain.AxisBounds) *float64 { return &p.C0 }},
	{label: "c₁  marginal propensity", delta: 0.01, decimals: 2, min: 0, max: 1,
		ref: func(p *domain.Params, _ *domain.AxisBounds) *float64 { return &p.C1 }},
	{label: "T   taxes", delta: 10, decimals: 2, min: math.Inf(-1), max: math.Inf(1),
		ref: func(p *domain.Params, _ *domain.AxisBounds) *float64 { return &p.Taxes }},
	{label: "Ymin total income", delta: 50, decimals: 2, min: math.Inf(-1), max: math.Inf(1),
		ref: func(p *domain.Params, _ *domain.AxisBounds) *float64 { return &p.YMin }},
	{label: "Ymax total income", delta: 50, decimals: 2, min: math.Inf(-1), max: math.Inf(1),
		ref: func(p *domain.Params, _ *domain.AxisBounds) *float64 { return &p.YMax }},
	{label: "ΔY  step", delta: 1, decimals: 0, min: 1, max: math.Inf(1),
		ref: func(p *domain.Params, _ *domain.AxisBounds) *float64 { return &p.Step }},
	{label: "X min (YD)", delta: 50, decimals: 0, min: math.Inf(-1), max: math.Inf(1),
		ref: func(_ *domain.Params, a *domain.AxisBounds) *float64 { return &a.XMin }},
	{label: "X max (YD)", delta: 50, decimals: 0, min: math.Inf(-1), max: math.Inf(1),
		ref: func(_ *domain.Params, a *domain.AxisBounds) *float64 { return &a.XMax }},
	{label: "Y min (C)", delta: 50, decimals: 0, min: math.Inf(-1), max: math.Inf(1),
		ref: func(_ *domain.Params, a *domain.AxisBounds) *float64 { return &a.YMin }},
	{label: "Y max (C)", delta: 50, decimals: 0, min: math.Inf(-1), max: math.Inf(1),
		ref: func(_ *domain.Params, a *domain.AxisBounds) *float64 { return &a.YMax }},
}

// adjust moves the value by dir increments, clamps it and rounds away
// accumulated float noise.
func (f field) adjust(v float64, dir int) float64 {
	v += float64(dir) * f.delta
	scale := math.Pow(10, float64(f.decimals+2))
	v = math.Round(v*scale) / scale
	return math.Min(f.max, math.Max(f.min, v))
}
