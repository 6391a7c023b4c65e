package yamlscenario

import (
	"path/filepath"
	"strings"

	"github.com/aalvaropc/consumo/internal/domain"
)

type yamlScenario struct {
	Name   string     `yaml:"name"`
	Params yamlParams `yaml:"params"`
	Axes   yamlAxes   `yaml:"axes,omitempty"`
}

// Pointers distinguish "absent" from an explicit zero.
type yamlParams struct {
	C0    *float64 `yaml:"c0,omitempty"`
	C1    *float64 `yaml:"c1,omitempty"`
	Taxes *float64 `yaml:"taxes,omitempty"`
	YMin  *float64 `yaml:"y_min,omitempty"`
	YMax  *float64 `yaml:"y_max,omitempty"`
	Step  *float64 `yaml:"step,omitempty"`
}

type yamlAxes struct {
	XMin *float64 `yaml:"x_min,omitempty"`
	XMax *float64 `yaml:"x_max,omitempty"`
	YMin *float64 `yaml:"y_min,omitempty"`
	YMax *float64 `yaml:"y_max,omitempty"`
}

// mapScenario fills absent parameters from domain.DefaultParams.
func mapScenario(path string, ys yamlScenario) domain.Scenario {
	name := strings.TrimSpace(ys.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	p := domain.DefaultParams()
	set(&p.C0, ys.Params.C0)
	set(&p.C1, ys.Params.C1)
	set(&p.Taxes, ys.Params.Taxes)
	set(&p.YMin, ys.Params.YMin)
	set(&p.YMax, ys.Params.YMax)
	set(&p.Step, ys.Params.Step)

	return domain.Scenario{
		Name:   name,
		Params: p,
		Axes: domain.AxisOverride{
			XMin: ys.Axes.XMin,
			XMax: ys.Axes.XMax,
			YMin: ys.Axes.YMin,
			YMax: ys.Axes.YMax,
		},
	}
}

func toYAML(sc domain.Scenario) yamlScenario {
	p := sc.Params
	return yamlScenario{
		Name: sc.Name,
		Params: yamlParams{
			C0:    &p.C0,
			C1:    &p.C1,
			Taxes: &p.Taxes,
			YMin:  &p.YMin,
			YMax:  &p.YMax,
			Step:  &p.Step,
		},
		Axes: yamlAxes{
			XMin: sc.Axes.XMin,
			XMax: sc.Axes.XMax,
			YMin: sc.Axes.YMin,
			YMax: sc.Axes.YMax,
		},
	}
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
