// Package csvexport writes a consumption series as comma-separated values.
//
// The layout is fixed: a Y,YD,C header followed by one row per generated
// point. Numbers use '.' as decimal separator regardless of locale, and
// integral values keep a trailing ".0" (e.g. "-200.0").
package csvexport

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/ports"
)

// DefaultFileName is used when a download has no explicit destination.
const DefaultFileName = "tabla_consumo.csv"

var header = []string{"Y", "YD", "C"}

type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

var _ ports.SeriesEncoder = (*Encoder)(nil)

func (e *Encoder) Encode(w io.Writer, s domain.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return wrap(err)
	}

	rec := make([]string, 3)
	for _, r := range s.Rows {
		rec[0] = FormatFloat(r.Y)
		rec[1] = FormatFloat(r.YD)
		rec[2] = FormatFloat(r.C)
		if err := cw.Write(rec); err != nil {
			return wrap(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return wrap(err)
	}
	return nil
}

// FormatFloat renders v with the shortest representation that round-trips,
// always including a decimal point for finite values.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func wrap(err error) error {
	return &domain.OpError{
		Op:   "csvexport.encode",
		Kind: domain.KindExecution,
		Err:  err,
	}
}
