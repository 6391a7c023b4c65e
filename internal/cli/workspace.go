package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/infra/csvexport"
	"github.com/aalvaropc/consumo/internal/infra/exportstore"
	"github.com/aalvaropc/consumo/internal/infra/workspacefinder"
	"github.com/aalvaropc/consumo/internal/infra/yamlscenario"
	"github.com/aalvaropc/consumo/internal/ports"
)

// workspaceCtx carries what commands need from the workspace. root is empty
// when no workspace was found; cfg then holds the built-in defaults.
type workspaceCtx struct {
	root string
	cfg  domain.Config

	scenarios *yamlscenario.Loader
	store     *exportstore.Store
}

func (ws *workspaceCtx) found() bool { return ws.root != "" }

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	if root == "" {
		wd, _ := os.Getwd()
		return &workspaceCtx{
			cfg:       domain.DefaultConfig(),
			scenarios: yamlscenario.NewLoader(wd),
		}, nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root: root,
		cfg:  cfg,
		scenarios: yamlscenario.NewLoader(
			root,
			yamlscenario.WithScenariosDir(cfg.Paths.ScenariosDir),
		),
		store: exportstore.NewStore(root, cfg, csvexport.NewEncoder(), exportstore.WithIndex(true)),
	}, nil
}

// resolveWorkspaceRoot returns the absolute workspace root, or "" when none
// is given and none is found upward from the working directory.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	return locateWorkspaceRoot(workspacefinder.NewFinder(), workspaceFlag)
}

func locateWorkspaceRoot(loc ports.WorkspaceLocator, workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := loc.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return root, nil
}

// resolveScenario loads the named scenario. An empty name falls back to the
// workspace default, and a missing default falls back to built-in params.
func resolveScenario(ws *workspaceCtx, name string) (domain.Scenario, error) {
	in := strings.TrimSpace(name)
	explicit := in != ""
	if !explicit {
		in = ws.cfg.Defaults.Scenario
	}

	builtin := domain.Scenario{Name: "default", Params: domain.DefaultParams()}
	if in == "" {
		return builtin, nil
	}

	sc, err := ws.scenarios.LoadScenario(in)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return builtin, nil
		}
		return domain.Scenario{}, err
	}
	return sc, nil
}

// requireWorkspace fails with a hint when no workspace was found.
func requireWorkspace(ws *workspaceCtx) error {
	if ws.found() {
		return nil
	}
	return &domain.OpError{
		Op:   "cli.workspace",
		Kind: domain.KindNotFound,
		Err:  errors.New("workspace not found (tip: run `consumo init`)"),
	}
}
