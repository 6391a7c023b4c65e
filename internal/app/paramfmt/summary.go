// Package paramfmt formats parameters for display with thousands separators.
package paramfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aalvaropc/consumo/internal/domain"
)

// Summary returns the "current parameters" line, e.g.
// "c0 = 1,200.00 · c1 = 0.75 · T = 200.00".
func Summary(p domain.Params) string {
	pr := message.NewPrinter(language.English)
	return pr.Sprintf("c0 = %.2f · c1 = %.2f · T = %.2f", p.C0, p.C1, p.Taxes)
}

// Range describes the income range and step.
func Range(p domain.Params) string {
	pr := message.NewPrinter(language.English)
	return pr.Sprintf("Y from %.2f to %.2f, step %.2f", p.YMin, p.YMax, p.Step)
}

// Number formats v with two decimals and grouping.
func Number(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", v)
}
