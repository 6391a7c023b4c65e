package usecase

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/consumo/internal/domain"
)

// GenerateSeries evaluates the consumption function over the income range.
type GenerateSeries struct {
	strictMPC bool
	log       *slog.Logger
}

type GenerateOption func(*GenerateSeries)

// WithStrictMPC rejects c1 outside [0, 1].
func WithStrictMPC(strict bool) GenerateOption {
	return func(uc *GenerateSeries) { uc.strictMPC = strict }
}

func WithLogger(log *slog.Logger) GenerateOption {
	return func(uc *GenerateSeries) {
		if log != nil {
			uc.log = log
		}
	}
}

func NewGenerateSeries(opts ...GenerateOption) *GenerateSeries {
	uc := &GenerateSeries{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *GenerateSeries) Execute(p domain.Params) (domain.Series, error) {
	if uc.strictMPC && (p.C1 < 0 || p.C1 > 1) {
		err := domain.InvalidParameter("series.generate", "c1", "must be within [0, 1] (got %g)", p.C1)
		uc.log.Warn("series.rejected", "err", err)
		return domain.Series{}, err
	}

	s, err := domain.Generate(p)
	if err != nil {
		uc.log.Warn("series.rejected", "err", err)
		return domain.Series{}, err
	}

	uc.log.Debug("series.generated",
		"c0", p.C0,
		"c1", p.C1,
		"taxes", p.Taxes,
		"y_min", p.YMin,
		"y_max", p.YMax,
		"step", p.Step,
		"rows", s.Len(),
	)
	return s, nil
}
