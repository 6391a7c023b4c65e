package usecase

import (
	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/ports"
)

// PlotSeries generates a series and hands its (YD, C) pairs to a renderer.
type PlotSeries struct {
	gen      *GenerateSeries
	renderer ports.ChartRenderer
}

func NewPlotSeries(gen *GenerateSeries, renderer ports.ChartRenderer) *PlotSeries {
	return &PlotSeries{gen: gen, renderer: renderer}
}

func (uc *PlotSeries) Execute(p domain.Params, axes domain.AxisBounds) (domain.Series, string, error) {
	s, err := uc.gen.Execute(p)
	if err != nil {
		return domain.Series{}, "", err
	}

	chart, err := uc.renderer.Render(s.Points(), axes)
	if err != nil {
		return s, "", err
	}
	return s, chart, nil
}
