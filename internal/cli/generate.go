package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/consumo/internal/app/paramfmt"
	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/infra/csvexport"
	"github.com/aalvaropc/consumo/internal/infra/logger"
	"github.com/aalvaropc/consumo/internal/usecase"
)

func generateCmd() *cobra.Command {
	var workspace string
	var format string
	var strict bool
	var pf paramFlags

	c := &cobra.Command{
		Use:   "generate",
		Short: "Print the consumption table for a scenario",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sc, err := pf.resolve(cmd, ws)
			if err != nil {
				return err
			}

			uc := usecase.NewGenerateSeries(
				usecase.WithStrictMPC(strict),
				usecase.WithLogger(logger.L()),
			)
			s, err := uc.Execute(sc.Params)
			if err != nil {
				return err
			}

			return printSeries(cmd.OutOrStdout(), sc.Name, s, format)
		},
	}

	pf.bind(c.Flags())
	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "table", "Output format: table|json|csv")
	c.Flags().BoolVar(&strict, "strict", false, "Reject c1 outside [0, 1]")
	return c
}

func printSeries(w io.Writer, scenario string, s domain.Series, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"scenario": scenario,
			"params":   s.Params,
			"rows":     s.Rows,
		}
		if s.Rows == nil {
			payload["rows"] = []domain.Row{}
		}
		return enc.Encode(payload)
	case "csv":
		return csvexport.NewEncoder().Encode(w, s)
	case "table", "":
		printTable(w, scenario, s)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected table|json|csv)", format)
	}
}

func printTable(w io.Writer, scenario string, s domain.Series) {
	fmt.Fprintf(w, "Scenario: %s\n", scenario)
	fmt.Fprintf(w, "%s\n", paramfmt.Summary(s.Params))
	fmt.Fprintf(w, "%s\n", paramfmt.Range(s.Params))
	fmt.Fprintf(w, "Rows:     %d\n\n", s.Len())

	if s.Len() == 0 {
		fmt.Fprintln(w, "(empty range: y_min is above y_max)")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Y", "YD", "C")
	for _, r := range s.Rows {
		t.Row(csvexport.FormatFloat(r.Y), csvexport.FormatFloat(r.YD), csvexport.FormatFloat(r.C))
	}
	fmt.Fprintln(w, t.String())
}
