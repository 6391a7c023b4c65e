package tui

import "github.com/aalvaropc/consumo/internal/domain"

type scenariosLoadedMsg struct {
	refs []domain.ScenarioRef
	err  error
}

type scenarioLoadedMsg struct {
	scenario domain.Scenario
	err      error
}

type exportDoneMsg struct {
	target string
	rows   int
	err    error
}
