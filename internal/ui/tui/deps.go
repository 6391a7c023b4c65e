package tui

import (
	"log/slog"

	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/ports"
)

type Deps struct {
	// Root is the workspace root, empty when running outside a workspace.
	Root     string
	Config   domain.Config
	Scenario domain.Scenario

	// Scenarios and Store are nil outside a workspace. Exports then go to
	// tabla_consumo.csv in the working directory.
	Scenarios ports.ScenarioLoader
	Store     ports.ExportStore
	Renderer  ports.ChartRenderer

	Logger *slog.Logger
	Debug  bool
}
