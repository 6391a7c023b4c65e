package ports

import "github.com/aalvaropc/consumo/internal/domain"

// ScenarioLoader loads parameter scenarios from a source (e.g., filesystem).
type ScenarioLoader interface {
	LoadScenario(nameOrPath string) (domain.Scenario, error)
	ListScenarios(root string) ([]domain.ScenarioRef, error)
}

// ScenarioWriter stores a scenario and returns where it was written.
type ScenarioWriter interface {
	SaveScenario(sc domain.Scenario) (path string, err error)
}
