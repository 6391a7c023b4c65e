package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/consumo/internal/app/paramfmt"
	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/infra/logger"
	"github.com/aalvaropc/consumo/internal/infra/prompt"
	"github.com/aalvaropc/consumo/internal/usecase"
)

func scenariosCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "scenarios",
		Short: "Manage scenarios in a workspace",
	}

	c.AddCommand(scenariosListCmd())
	c.AddCommand(scenariosNewCmd())
	return c
}

func scenariosListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scenarios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			if err := requireWorkspace(ws); err != nil {
				return err
			}

			refs, err := ws.scenarios.ListScenarios(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no scenarios found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			fmt.Fprintf(out, "Default:   %s\n\n", ws.cfg.Defaults.Scenario)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func scenariosNewCmd() *cobra.Command {
	var workspace string
	var name string
	var noInput bool
	var pf paramFlags

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a scenario (interactive unless --no-input)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}
			if err := requireWorkspace(ws); err != nil {
				return err
			}

			var sc domain.Scenario
			if noInput {
				if strings.TrimSpace(name) == "" {
					return errors.New("--name is required with --no-input")
				}
				sc = domain.Scenario{
					Name:   strings.TrimSpace(name),
					Params: pf.apply(cmd, domain.DefaultParams()),
				}
			} else {
				sc, err = prompt.NewWizard().AskScenario(pf.apply(cmd, domain.DefaultParams()))
				if err != nil {
					return err
				}
			}

			gen := usecase.NewGenerateSeries(usecase.WithLogger(logger.L()))
			path, err := usecase.NewCreateScenario(gen, ws.scenarios).Execute(sc)
			if err != nil {
				return err
			}

			rel, _ := filepath.Rel(ws.root, path)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created scenario %q (%s)\n", sc.Name, rel)
			fmt.Fprintln(out, paramfmt.Summary(sc.Params))
			return nil
		},
	}

	pf.bind(cmd.Flags())
	_ = cmd.Flags().MarkHidden("scenario")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Scenario name (required with --no-input)")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Do not prompt; take parameters from flags")
	return cmd
}
