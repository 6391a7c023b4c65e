package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/infra/csvexport"
	"github.com/aalvaropc/consumo/internal/infra/logger"
	"github.com/aalvaropc/consumo/internal/usecase"
)

func exportCmd() *cobra.Command {
	var workspace string
	var output string
	var pf paramFlags

	c := &cobra.Command{
		Use:   "export",
		Short: "Export the consumption table as CSV (Y,YD,C)",
		Long: "Export the consumption table as CSV.\n\n" +
			"With -o the file is written to that path (\"-\" for stdout). Without -o the\n" +
			"export goes to the workspace exports directory, or to " + csvexport.DefaultFileName + "\n" +
			"in the current directory when no workspace is found.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sc, err := pf.resolve(cmd, ws)
			if err != nil {
				return err
			}

			gen := usecase.NewGenerateSeries(usecase.WithLogger(logger.L()))
			out := cmd.OutOrStdout()

			target := strings.TrimSpace(output)
			if target == "" && ws.found() {
				s, id, err := usecase.NewExportSeries(gen, ws.store).Execute(cmd.Context(), sc.Name, sc.Params)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported %d row(s) to %s\n", s.Len(), filepath.Join(ws.store.Dir(), id+".csv"))
				return nil
			}
			if target == "" {
				target = csvexport.DefaultFileName
			}

			s, err := gen.Execute(sc.Params)
			if err != nil {
				return err
			}

			if target == "-" {
				return csvexport.NewEncoder().Encode(out, s)
			}
			if err := writeCSVFile(target, s); err != nil {
				return err
			}
			fmt.Fprintf(out, "Exported %d row(s) to %s\n", s.Len(), target)
			return nil
		},
	}

	pf.bind(c.Flags())
	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for stdout")
	return c
}

func writeCSVFile(path string, s domain.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return &domain.OpError{Op: "cli.export", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := csvexport.NewEncoder().Encode(f, s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &domain.OpError{Op: "cli.export", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}
