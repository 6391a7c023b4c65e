package usecase

import (
	"context"
	"time"

	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/ports"
)

// ExportSeries generates a series and saves it through an export store.
type ExportSeries struct {
	gen   *GenerateSeries
	store ports.ExportStore
	now   func() time.Time
}

func NewExportSeries(gen *GenerateSeries, store ports.ExportStore) *ExportSeries {
	return &ExportSeries{gen: gen, store: store, now: time.Now}
}

// Execute returns the generated series and the id assigned by the store.
func (uc *ExportSeries) Execute(ctx context.Context, scenario string, p domain.Params) (domain.Series, string, error) {
	s, err := uc.gen.Execute(p)
	if err != nil {
		return domain.Series{}, "", err
	}

	if err := ctx.Err(); err != nil {
		return s, "", err
	}

	id, err := uc.store.SaveExport(domain.ExportArtifact{
		Scenario:  scenario,
		CreatedAt: uc.now(),
		Series:    s,
	})
	if err != nil {
		uc.gen.log.Error("export.failed", "scenario", scenario, "err", err)
		return s, "", err
	}

	uc.gen.log.Info("export.saved", "scenario", scenario, "id", id, "rows", s.Len())
	return s, id, nil
}
