package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/infra/csvexport"
	"github.com/aalvaropc/consumo/internal/usecase"
)

func cmdLoadScenarios(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Scenarios == nil {
			return scenariosLoadedMsg{err: errors.New("ScenarioLoader is nil")}
		}
		refs, err := deps.Scenarios.ListScenarios(deps.Root)
		return scenariosLoadedMsg{refs: refs, err: err}
	}
}

func cmdLoadScenario(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		if deps.Scenarios == nil {
			return scenarioLoadedMsg{err: errors.New("ScenarioLoader is nil")}
		}
		sc, err := deps.Scenarios.LoadScenario(path)
		return scenarioLoadedMsg{scenario: sc, err: err}
	}
}

// cmdExport writes the current series through the workspace store, or to
// tabla_consumo.csv in the working directory when there is no store.
func cmdExport(deps Deps, gen *usecase.GenerateSeries, scenario string, p domain.Params) tea.Cmd {
	return func() tea.Msg {
		log := deps.Logger
		if log == nil {
			log = discardLogger()
		}

		if deps.Store != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			s, id, err := usecase.NewExportSeries(gen, deps.Store).Execute(ctx, scenario, p)
			return exportDoneMsg{target: id + ".csv", rows: s.Len(), err: err}
		}

		s, err := gen.Execute(p)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		target := csvexport.DefaultFileName
		if wd, werr := os.Getwd(); werr == nil {
			target = filepath.Join(wd, target)
		}

		f, err := os.Create(target)
		if err != nil {
			return exportDoneMsg{err: &domain.OpError{Op: "tui.export", Kind: domain.KindExecution, Path: target, Err: err}}
		}
		encErr := csvexport.NewEncoder().Encode(f, s)
		closeErr := f.Close()
		if err := errors.Join(encErr, closeErr); err != nil {
			log.Error("export.failed", "target", target, "err", err)
			return exportDoneMsg{err: err}
		}

		log.Info("export.saved", "target", target, "rows", s.Len())
		return exportDoneMsg{target: target, rows: s.Len()}
	}
}
