package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aalvaropc/consumo/internal/domain"
)

// paramFlags holds the model parameters settable from the command line.
// Only flags the user actually set override the scenario values.
type paramFlags struct {
	scenario string
	p        domain.Params
}

func (f *paramFlags) bind(fs *pflag.FlagSet) {
	d := domain.DefaultParams()
	fs.StringVarP(&f.scenario, "scenario", "s", "", "Scenario name or path (defaults to the workspace default)")
	fs.Float64Var(&f.p.C0, "c0", d.C0, "Autonomous consumption")
	fs.Float64Var(&f.p.C1, "c1", d.C1, "Marginal propensity to consume")
	fs.Float64Var(&f.p.Taxes, "taxes", d.Taxes, "Taxes (T)")
	fs.Float64Var(&f.p.YMin, "y-min", d.YMin, "Lowest total income")
	fs.Float64Var(&f.p.YMax, "y-max", d.YMax, "Highest total income")
	fs.Float64Var(&f.p.Step, "step", d.Step, "Income step")
}

func (f *paramFlags) apply(cmd *cobra.Command, base domain.Params) domain.Params {
	fs := cmd.Flags()
	set := func(name string, dst *float64, v float64) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("c0", &base.C0, f.p.C0)
	set("c1", &base.C1, f.p.C1)
	set("taxes", &base.Taxes, f.p.Taxes)
	set("y-min", &base.YMin, f.p.YMin)
	set("y-max", &base.YMax, f.p.YMax)
	set("step", &base.Step, f.p.Step)
	return base
}

// resolve loads the scenario and layers the set flags on top of it.
func (f *paramFlags) resolve(cmd *cobra.Command, ws *workspaceCtx) (domain.Scenario, error) {
	sc, err := resolveScenario(ws, f.scenario)
	if err != nil {
		return domain.Scenario{}, err
	}
	sc.Params = f.apply(cmd, sc.Params)
	return sc, nil
}

type axisFlags struct {
	a domain.AxisBounds
}

func (f *axisFlags) bind(fs *pflag.FlagSet) {
	d := domain.DefaultAxes()
	fs.Float64Var(&f.a.XMin, "x-min", d.XMin, "Chart x axis minimum (disposable income)")
	fs.Float64Var(&f.a.XMax, "x-max", d.XMax, "Chart x axis maximum (disposable income)")
	fs.Float64Var(&f.a.YMin, "c-min", d.YMin, "Chart y axis minimum (consumption)")
	fs.Float64Var(&f.a.YMax, "c-max", d.YMax, "Chart y axis maximum (consumption)")
}

func (f *axisFlags) apply(cmd *cobra.Command, base domain.AxisBounds) domain.AxisBounds {
	fs := cmd.Flags()
	if fs.Changed("x-min") {
		base.XMin = f.a.XMin
	}
	if fs.Changed("x-max") {
		base.XMax = f.a.XMax
	}
	if fs.Changed("c-min") {
		base.YMin = f.a.YMin
	}
	if fs.Changed("c-max") {
		base.YMax = f.a.YMax
	}
	return base
}
