package domain

// Params are the scalar inputs of the consumption function
// C = c0 + c1·(Y − T) and of the income range it is evaluated over.
type Params struct {
	// C0 is autonomous consumption (intercept).
	C0 float64 `json:"c0"`
	// C1 is the marginal propensity to consume (slope). Conventionally in
	// [0, 1]; the generator does not enforce it.
	C1 float64 `json:"c1"`
	// Taxes is T.
	Taxes float64 `json:"taxes"`

	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
	Step float64 `json:"step"`
}

// DefaultParams returns the textbook starting point used when nothing else
// is configured.
func DefaultParams() Params {
	return Params{
		C0:    200,
		C1:    0.75,
		Taxes: 200,
		YMin:  0,
		YMax:  2000,
		Step:  100,
	}
}

// Disposable returns YD = Y − T.
func (p Params) Disposable(y float64) float64 {
	return y - p.Taxes
}

// Consumption returns C = c0 + c1·yd for a disposable income yd.
func (p Params) Consumption(yd float64) float64 {
	return p.C0 + p.C1*yd
}

// AxisBounds are the fixed display limits handed to a chart renderer.
// X is disposable income, Y is consumption.
type AxisBounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

func DefaultAxes() AxisBounds {
	return AxisBounds{XMin: 0, XMax: 2000, YMin: 0, YMax: 2000}
}

// Validate rejects bounds a renderer cannot map onto a grid.
func (a AxisBounds) Validate() error {
	const op = "axes.validate"
	if !isFinite(a.XMin) || !isFinite(a.XMax) || !isFinite(a.YMin) || !isFinite(a.YMax) {
		return InvalidParameter(op, "axes", "bounds must be finite")
	}
	if a.XMin >= a.XMax {
		return InvalidParameter(op, "x_min/x_max", "x_min must be < x_max (got %g, %g)", a.XMin, a.XMax)
	}
	if a.YMin >= a.YMax {
		return InvalidParameter(op, "y_min/y_max", "y_min must be < y_max (got %g, %g)", a.YMin, a.YMax)
	}
	return nil
}
