package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/consumo/internal/app/paramfmt"
	"github.com/aalvaropc/consumo/internal/infra/logger"
	"github.com/aalvaropc/consumo/internal/infra/textchart"
	"github.com/aalvaropc/consumo/internal/usecase"
)

func chartCmd() *cobra.Command {
	var workspace string
	var width, height int
	var with45 bool
	var pf paramFlags
	var af axisFlags

	c := &cobra.Command{
		Use:   "chart",
		Short: "Draw consumption against disposable income with fixed axes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sc, err := pf.resolve(cmd, ws)
			if err != nil {
				return err
			}
			axes := af.apply(cmd, sc.Axes.Apply(ws.cfg.Axes))

			renderer := textchart.New(
				textchart.WithSize(width, height),
				textchart.WithReferenceLine(with45),
				textchart.WithStyles(
					lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
					lipgloss.NewStyle().Faint(true),
					lipgloss.NewStyle().Faint(true),
				),
			)

			gen := usecase.NewGenerateSeries(usecase.WithLogger(logger.L()))
			_, chart, err := usecase.NewPlotSeries(gen, renderer).Execute(sc.Params, axes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, chart)
			fmt.Fprintln(out, paramfmt.Summary(sc.Params))
			return nil
		},
	}

	pf.bind(c.Flags())
	af.bind(c.Flags())
	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().IntVar(&width, "width", textchart.DefaultWidth, "Plot width in cells")
	c.Flags().IntVar(&height, "height", textchart.DefaultHeight, "Plot height in cells")
	c.Flags().BoolVar(&with45, "with-45", false, "Draw the 45° line C = YD")
	return c
}
