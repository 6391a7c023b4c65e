package usecase

import (
	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/ports"
)

// CreateScenario stores a new scenario after checking it generates.
type CreateScenario struct {
	gen    *GenerateSeries
	writer ports.ScenarioWriter
}

func NewCreateScenario(gen *GenerateSeries, writer ports.ScenarioWriter) *CreateScenario {
	return &CreateScenario{gen: gen, writer: writer}
}

func (uc *CreateScenario) Execute(sc domain.Scenario) (string, error) {
	if _, err := uc.gen.Execute(sc.Params); err != nil {
		return "", err
	}
	return uc.writer.SaveScenario(sc)
}
