package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/consumo/internal/infra/logger"
	"github.com/aalvaropc/consumo/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "consumo",
		Short:        "Explore the consumption function C = c0 + c1·(Y − T)",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			var workspace string
			if f := c.Flags().Lookup("workspace"); f != nil {
				workspace = f.Value.String()
			}

			root, ok := logRoot(workspace, debug)
			if !ok {
				return nil
			}
			var err error
			cleanup, err = logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
			if err != nil {
				return fmt.Errorf("setup logging in %s: %w", root, err)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace("")
			if err != nil {
				return err
			}

			sc, err := resolveScenario(ws, "")
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Root:     ws.root,
				Config:   ws.cfg,
				Scenario: sc,
				Logger:   logger.L(),
				Debug:    debug,
			}
			if ws.found() {
				deps.Scenarios = ws.scenarios
				deps.Store = ws.store
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .consumo/logs/consumo.log")

	cmd.AddCommand(
		generateCmd(),
		chartCmd(),
		exportCmd(),
		scenariosCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// logRoot is the -w workspace, else the workspace found upward. Outside a
// workspace logs go to the working directory, and only with --debug.
func logRoot(workspaceFlag string, debug bool) (string, bool) {
	if root, err := resolveWorkspaceRoot(workspaceFlag); err == nil && root != "" {
		return root, true
	}
	if !debug {
		return "", false
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)
	return wd, true
}
