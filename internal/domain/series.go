package domain

import "math"

const (
	// RangeEpsilon is the absolute tolerance used when deciding whether the
	// upper income bound is reached. A Y value within RangeEpsilon above YMax
	// is still emitted, so a YMax exactly reachable by N steps is never
	// dropped because of rounding.
	RangeEpsilon = 1e-9

	// MaxRows bounds the size of a generated series.
	MaxRows = 1_000_000
)

// Row is one evaluated point of the consumption function.
type Row struct {
	Y  float64 `json:"Y"`
	YD float64 `json:"YD"`
	C  float64 `json:"C"`
}

// Point is an (x, y) pair handed to a chart renderer.
type Point struct {
	X float64
	Y float64
}

// Series is the ordered result of Generate.
type Series struct {
	Params Params `json:"params"`
	Rows   []Row  `json:"rows"`
}

// Len returns the number of rows.
func (s Series) Len() int { return len(s.Rows) }

// Points returns the (YD, C) pairs in row order.
func (s Series) Points() []Point {
	out := make([]Point, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = Point{X: r.YD, Y: r.C}
	}
	return out
}

// Head returns at most n leading rows.
func (s Series) Head(n int) []Row {
	if n < 0 {
		n = 0
	}
	if n > len(s.Rows) {
		n = len(s.Rows)
	}
	return s.Rows[:n]
}

// Generate evaluates C = c0 + c1·(Y − T) for Y = YMin, YMin+Step, ... up to
// YMax (inclusive within RangeEpsilon).
//
// Y values are computed as YMin + i·Step, so there is no accumulated drift.
// YMin above YMax + RangeEpsilon yields an empty series. Step <= 0 and
// non-finite parameters fail with a KindInvalidParameter error.
func Generate(p Params) (Series, error) {
	n, err := RowCount(p)
	if err != nil {
		return Series{}, err
	}

	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		y := p.YMin + float64(i)*p.Step
		yd := p.Disposable(y)
		rows = append(rows, Row{Y: y, YD: yd, C: p.Consumption(yd)})
	}

	return Series{Params: p, Rows: rows}, nil
}

// RowCount returns how many rows Generate would produce for p.
func RowCount(p Params) (int, error) {
	const op = "series.generate"

	fields := []struct {
		name string
		v    float64
	}{
		{"c0", p.C0},
		{"c1", p.C1},
		{"taxes", p.Taxes},
		{"y_min", p.YMin},
		{"y_max", p.YMax},
		{"step", p.Step},
	}
	for _, f := range fields {
		if !isFinite(f.v) {
			return 0, InvalidParameter(op, f.name, "must be a finite number (got %v)", f.v)
		}
	}

	if p.Step <= 0 {
		return 0, InvalidParameter(op, "step", "must be > 0 (got %g)", p.Step)
	}

	if p.YMin > p.YMax+RangeEpsilon {
		return 0, nil
	}

	limit := p.YMax + RangeEpsilon
	span := (limit - p.YMin) / p.Step
	if span >= MaxRows {
		return 0, InvalidParameter(op, "step", "range produces more than %d rows", MaxRows)
	}

	// k is the largest index with YMin + k·Step <= limit. Floor of the
	// quotient is off by at most one or two after rounding.
	k := int(math.Floor(span))
	for i := 0; i < 2 && k > 0 && p.YMin+float64(k)*p.Step > limit; i++ {
		k--
	}
	for i := 0; i < 2 && p.YMin+float64(k+1)*p.Step <= limit; i++ {
		k++
	}
	n := k + 1

	if n > 1 {
		m := math.Max(math.Abs(p.YMin), math.Abs(p.YMin+float64(k)*p.Step))
		ulp := math.Nextafter(m, math.Inf(1)) - m
		if p.Step <= 2*ulp {
			return 0, InvalidParameter(op, "step", "too small for the income range (%g)", p.Step)
		}
	}

	return n, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
