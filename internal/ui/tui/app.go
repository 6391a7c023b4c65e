package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/consumo/internal/app/paramfmt"
	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/infra/csvexport"
	"github.com/aalvaropc/consumo/internal/infra/textchart"
	"github.com/aalvaropc/consumo/internal/usecase"
)

type screen int

const (
	screenExplorer screen = iota
	screenScenarios
)

type scenarioItem struct {
	ref domain.ScenarioRef
}

func (i scenarioItem) Title() string       { return i.ref.Name }
func (i scenarioItem) Description() string { return i.ref.Path }
func (i scenarioItem) FilterValue() string { return i.ref.Name }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	cursor int

	scenario string
	params   domain.Params
	axes     domain.AxisBounds

	gen  *usecase.GenerateSeries
	plot *usecase.PlotSeries

	series  domain.Series
	chart   string
	err     error
	preview table.Model
	picker  list.Model

	exporting bool
	toast     string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	if deps.Logger == nil {
		deps.Logger = discardLogger()
	}
	if deps.Renderer == nil {
		deps.Renderer = textchart.New(textchart.WithStyles(t.Series, t.Reference, t.Axis))
	}
	if deps.Config == (domain.Config{}) {
		deps.Config = domain.DefaultConfig()
	}

	gen := usecase.NewGenerateSeries(usecase.WithLogger(deps.Logger))

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Scenarios"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	preview := table.New(
		table.WithColumns([]table.Column{
			{Title: "Y", Width: 12},
			{Title: "YD", Width: 12},
			{Title: "C", Width: 12},
		}),
		table.WithHeight(deps.Config.PreviewRows+1),
		table.WithFocused(false),
	)

	m := model{
		theme:   t,
		deps:    deps,
		scr:     screenExplorer,
		gen:     gen,
		plot:    usecase.NewPlotSeries(gen, deps.Renderer),
		preview: preview,
		picker:  l,
	}
	m.applyScenario(deps.Scenario)
	deps.Logger.Debug("tui.start", "root", deps.Root, "scenario", m.scenario, "debug", deps.Debug)
	return m
}

// applyScenario replaces params and axes and recomputes everything.
func (m *model) applyScenario(sc domain.Scenario) {
	m.scenario = sc.Name
	if strings.TrimSpace(m.scenario) == "" {
		m.scenario = "default"
	}
	m.params = sc.Params
	if m.params == (domain.Params{}) {
		m.params = domain.DefaultParams()
	}
	m.axes = sc.Axes.Apply(m.deps.Config.Axes)
	m.recompute()
}

func (m *model) recompute() {
	s, chart, err := m.plot.Execute(m.params, m.axes)
	m.series, m.chart, m.err = s, chart, err

	rows := make([]table.Row, 0, m.deps.Config.PreviewRows)
	if err == nil {
		for _, r := range s.Head(m.deps.Config.PreviewRows) {
			rows = append(rows, table.Row{
				csvexport.FormatFloat(r.Y),
				csvexport.FormatFloat(r.YD),
				csvexport.FormatFloat(r.C),
			})
		}
	}
	m.preview.SetRows(rows)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.picker.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case scenariosLoadedMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("scenarios.list.failed", "err", msg.err)
			m.scr = screenExplorer
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, scenarioItem{ref: r})
		}
		return m, m.picker.SetItems(items)

	case scenarioLoadedMsg:
		m.scr = screenExplorer
		if msg.err != nil {
			m.deps.Logger.Warn("scenario.load.failed", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.applyScenario(msg.scenario)
		m.toast = "Loaded scenario " + m.scenario
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = fmt.Sprintf("Exported %d row(s) to %s", msg.rows, msg.target)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.scr == screenScenarios {
			return m.updatePicker(msg)
		}
		return m.updateExplorer(msg)
	}

	if m.scr == screenScenarios {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateExplorer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}

	case "left", "h", "-":
		m.adjust(-1)

	case "right", "l", "+":
		m.adjust(1)

	case "r":
		m.applyScenario(domain.Scenario{Name: "default", Params: domain.DefaultParams()})
		m.toast = "Parameters reset to defaults"

	case "e":
		if m.err != nil {
			m.toast = userMessage(m.err)
			return m, nil
		}
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.toast = "Exporting…"
		return m, cmdExport(m.deps, m.gen, m.scenario, m.params)

	case "s":
		if m.deps.Scenarios == nil {
			m.toast = "No workspace found (run `consumo init` to use scenarios)"
			return m, nil
		}
		m.scr = screenScenarios
		m.toast = ""
		return m, cmdLoadScenarios(m.deps)
	}
	return m, nil
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "q":
		m.scr = screenExplorer
		return m, nil

	case "enter":
		it, ok := m.picker.SelectedItem().(scenarioItem)
		if !ok {
			return m, nil
		}
		return m, cmdLoadScenario(m.deps, it.ref.Path)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *model) adjust(dir int) {
	f := fields[m.cursor]
	v := f.ref(&m.params, &m.axes)
	*v = f.adjust(*v, dir)
	m.recompute()
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("consumo") + "  " +
		m.theme.Subtitle.Render("C = c₀ + c₁·(Y − T)") + "\n"

	var banner string
	if m.deps.Root != "" {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s • Scenario: %s", m.deps.Root, m.scenario))
	} else {
		banner = m.theme.Help.Render(fmt.Sprintf("No workspace (exports go to %s) • Scenario: %s", csvexport.DefaultFileName, m.scenario))
	}
	if m.deps.Debug {
		banner += m.theme.Help.Render(" • debug logging on")
	}

	switch m.scr {
	case screenScenarios:
		help := m.theme.Help.Render("↑/↓ navigate • enter load • / search • esc back")
		return wrap.Render(header + banner + "\n\n" + m.theme.Card.Render(m.picker.View()) + "\n" + help)

	default:
		var body string
		if m.err != nil {
			body = lipgloss.JoinHorizontal(lipgloss.Top,
				m.theme.Card.Render(m.viewParams()),
				m.theme.Error.Render(userMessage(m.err)),
			)
		} else {
			top := lipgloss.JoinHorizontal(lipgloss.Top,
				m.theme.Card.Render(m.viewParams()),
				m.theme.Card.Render(m.chart),
			)
			body = top + "\n" +
				m.theme.Title.Render("Current parameters") + "  " + paramfmt.Summary(m.params) + "\n\n" +
				m.theme.Title.Render(fmt.Sprintf("Table (first %d rows of %d)", len(m.preview.Rows()), m.series.Len())) + "\n" +
				m.preview.View()
		}

		out := header + banner + "\n\n" + body + "\n"
		if m.toast != "" {
			out += "\n" + m.theme.Toast.Render(m.toast)
		}
		help := m.theme.Help.Render("↑/↓ select • ←/→ adjust • e export CSV • s scenarios • r reset • q quit")
		return wrap.Render(out + "\n" + help)
	}
}

func (m model) viewParams() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Parameters"))
	b.WriteString("\n")
	for i, f := range fields {
		if i == firstAxisField {
			b.WriteString("\n")
			b.WriteString(m.theme.Title.Render("Fixed axes"))
			b.WriteString("\n")
		}
		v := *f.ref(&m.params, &m.axes)
		value := paramfmt.Number(v)
		if f.decimals == 0 {
			value = strings.TrimSuffix(value, ".00")
		}

		if i == m.cursor {
			b.WriteString(m.theme.Selected.Render(fmt.Sprintf("› %-28s %12s", f.label, value)))
		} else {
			b.WriteString("  " + m.theme.Label.Render(fmt.Sprintf("%-28s", f.label)) + " " + m.theme.Value.Render(fmt.Sprintf("%12s", value)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
