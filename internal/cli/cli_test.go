package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/infra/fsworkspace"
)

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init workspace: %v", err)
	}
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}
	for _, expected := range []string{"generate", "chart", "export", "scenarios", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	if cmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("expected persistent --debug flag")
	}
}

func TestParamCommands_Flags(t *testing.T) {
	params := []string{"scenario", "c0", "c1", "taxes", "y-min", "y-max", "step", "workspace"}

	cases := []struct {
		name  string
		flags []string
	}{
		{"generate", append([]string{"format", "strict"}, params...)},
		{"chart", append([]string{"width", "height", "with-45", "x-min", "x-max", "c-min", "c-max"}, params...)},
		{"export", append([]string{"output"}, params...)},
	}

	root := newRootCmd()
	for _, c := range cases {
		sub, _, err := root.Find([]string{c.name})
		if err != nil {
			t.Fatalf("find %s: %v", c.name, err)
		}
		for _, f := range c.flags {
			if sub.Flags().Lookup(f) == nil {
				t.Errorf("expected --%s flag on %s command", f, c.name)
			}
		}
	}
}

func TestScenariosCmd_Subcommands(t *testing.T) {
	cmd := scenariosCmd()
	got := map[string]bool{}
	for _, sub := range cmd.Commands() {
		got[sub.Use] = true
	}
	if !got["list"] || !got["new"] {
		t.Errorf("expected list and new under scenarios, got %v", got)
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- paramFlags ---

func TestParamFlags_OnlyChangedOverride(t *testing.T) {
	var pf paramFlags
	cmd := &cobra.Command{Use: "t"}
	pf.bind(cmd.Flags())

	if err := cmd.Flags().Parse([]string{"--taxes", "0", "--step", "250"}); err != nil {
		t.Fatal(err)
	}

	base := domain.Params{C0: 1, C1: 0.5, Taxes: 300, YMin: 10, YMax: 20, Step: 1}
	got := pf.apply(cmd, base)
	want := domain.Params{C0: 1, C1: 0.5, Taxes: 0, YMin: 10, YMax: 20, Step: 250}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestAxisFlags_OnlyChangedOverride(t *testing.T) {
	var af axisFlags
	cmd := &cobra.Command{Use: "t"}
	af.bind(cmd.Flags())

	if err := cmd.Flags().Parse([]string{"--c-max", "900"}); err != nil {
		t.Fatal(err)
	}

	got := af.apply(cmd, domain.AxisBounds{XMin: -100, XMax: 100, YMin: 0, YMax: 50})
	want := domain.AxisBounds{XMin: -100, XMax: 100, YMin: 0, YMax: 900}
	if got != want {
		t.Fatalf("axes = %+v, want %+v", got, want)
	}
}

// --- printSeries ---

func sampleSeries(t *testing.T) domain.Series {
	t.Helper()
	p := domain.DefaultParams()
	p.Step = 1000
	s, err := domain.Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPrintSeries_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := printSeries(&buf, "x", sampleSeries(t), "csv"); err != nil {
		t.Fatal(err)
	}
	want := "Y,YD,C\n0.0,-200.0,50.0\n1000.0,800.0,800.0\n2000.0,1800.0,1550.0\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintSeries_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printSeries(&buf, "baseline", sampleSeries(t), "json"); err != nil {
		t.Fatal(err)
	}

	var payload struct {
		Scenario string        `json:"scenario"`
		Params   domain.Params `json:"params"`
		Rows     []domain.Row  `json:"rows"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if payload.Scenario != "baseline" || len(payload.Rows) != 3 || payload.Params.Step != 1000 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestPrintSeries_JSONEmptyRows(t *testing.T) {
	var buf bytes.Buffer
	s := domain.Series{Params: domain.DefaultParams()}
	if err := printSeries(&buf, "x", s, "json"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"rows": []`) {
		t.Fatalf("expected empty rows array, got:\n%s", buf.String())
	}
}

func TestPrintSeries_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := printSeries(&buf, "baseline", sampleSeries(t), "table"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Scenario: baseline", "c0 = 200.00 · c1 = 0.75 · T = 200.00", "Rows:     3", "1550.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestPrintSeries_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printSeries(&buf, "x", domain.Series{Params: domain.DefaultParams()}, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "empty range") {
		t.Fatalf("expected empty-range note, got:\n%s", buf.String())
	}
}

func TestPrintSeries_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := printSeries(&buf, "x", sampleSeries(t), "xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

// --- workspace resolution ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

type stubLocator struct {
	root string
	err  error
}

func (s stubLocator) FindRoot(string) (string, error) { return s.root, s.err }

func TestLocateWorkspaceRoot_UsesLocator(t *testing.T) {
	boom := &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindExecution, Err: errors.New("boom")}

	cases := []struct {
		name    string
		loc     stubLocator
		want    string
		wantErr bool
	}{
		{name: "found", loc: stubLocator{root: "/ws"}, want: "/ws"},
		{name: "not found is empty", loc: stubLocator{err: &domain.OpError{Kind: domain.KindNotFound, Err: domain.ErrNotFound}}},
		{name: "other errors surface", loc: stubLocator{err: boom}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := locateWorkspaceRoot(tc.loc, "")
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolveScenario(t *testing.T) {
	root := newWorkspace(t)
	ws, err := loadWorkspace(root)
	if err != nil {
		t.Fatal(err)
	}

	sc, err := resolveScenario(ws, "")
	if err != nil {
		t.Fatalf("default scenario: %v", err)
	}
	if sc.Name != "baseline" {
		t.Errorf("expected baseline, got %q", sc.Name)
	}

	sc, err = resolveScenario(ws, "high-taxes")
	if err != nil {
		t.Fatalf("named scenario: %v", err)
	}
	if sc.Params.Taxes != 600 {
		t.Errorf("expected taxes 600, got %v", sc.Params.Taxes)
	}

	if _, err := resolveScenario(ws, "missing"); !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected not_found for explicit missing scenario, got %v", err)
	}
}

func TestResolveScenario_MissingDefaultFallsBack(t *testing.T) {
	root := newWorkspace(t)
	if err := os.Remove(filepath.Join(root, "scenarios", "baseline.yaml")); err != nil {
		t.Fatal(err)
	}
	ws, err := loadWorkspace(root)
	if err != nil {
		t.Fatal(err)
	}

	sc, err := resolveScenario(ws, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(domain.DefaultParams(), sc.Params); diff != "" {
		t.Fatalf("expected built-in params (-want +got):\n%s", diff)
	}
}

func TestRequireWorkspace(t *testing.T) {
	if err := requireWorkspace(&workspaceCtx{}); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if err := requireWorkspace(&workspaceCtx{root: "/ws"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// --- end to end ---

func TestGenerate_CSVWithOverrides(t *testing.T) {
	root := newWorkspace(t)

	out, err := runCLI(t, "generate", "-w", root, "--format", "csv", "--step", "500")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header + 5 rows, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "Y,YD,C" || lines[1] != "0.0,-200.0,50.0" {
		t.Fatalf("unexpected leading lines: %q", lines[:2])
	}
}

func TestGenerate_LogsUnderWorkspaceFlag(t *testing.T) {
	root := newWorkspace(t)

	if out, err := runCLI(t, "generate", "-w", root, "--format", "csv"); err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	b, err := os.ReadFile(filepath.Join(root, ".consumo", "logs", "consumo.log"))
	if err != nil {
		t.Fatalf("expected log file under -w workspace: %v", err)
	}
	if !strings.Contains(string(b), "logger.initialized") {
		t.Fatalf("unexpected log content:\n%s", b)
	}
}

func TestGenerate_LogSetupFailureIsReported(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := runCLI(t, "generate", "-w", file, "--format", "csv")
	if err == nil || !strings.Contains(err.Error(), "setup logging") {
		t.Fatalf("expected logging setup error, got %v", err)
	}
}

func TestGenerate_InvalidStep(t *testing.T) {
	root := newWorkspace(t)

	_, err := runCLI(t, "generate", "-w", root, "--step", "0")
	if !domain.IsKind(err, domain.KindInvalidParameter) {
		t.Fatalf("expected invalid_parameter, got %v", err)
	}
}

func TestGenerate_StrictRejectsMPC(t *testing.T) {
	root := newWorkspace(t)

	if _, err := runCLI(t, "generate", "-w", root, "--c1", "1.5", "--format", "csv"); err != nil {
		t.Fatalf("lenient generate: %v", err)
	}
	if _, err := runCLI(t, "generate", "-w", root, "--c1", "1.5", "--strict"); !domain.IsKind(err, domain.KindInvalidParameter) {
		t.Fatalf("expected invalid_parameter with --strict, got %v", err)
	}
}

func TestChart_RendersLabels(t *testing.T) {
	root := newWorkspace(t)

	out, err := runCLI(t, "chart", "-w", root, "--width", "30", "--height", "10", "--with-45")
	if err != nil {
		t.Fatalf("chart: %v\n%s", err, out)
	}
	for _, want := range []string{"Consumption (C)", "Disposable income (Y − T)", "c0 = 200.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in chart output", want)
		}
	}
}

func TestChart_DegenerateAxes(t *testing.T) {
	root := newWorkspace(t)

	_, err := runCLI(t, "chart", "-w", root, "--x-min", "100", "--x-max", "100")
	if !domain.IsKind(err, domain.KindInvalidParameter) {
		t.Fatalf("expected invalid_parameter, got %v", err)
	}
}

func TestExport_ToWorkspaceStore(t *testing.T) {
	root := newWorkspace(t)

	out, err := runCLI(t, "export", "-w", root, "-s", "thrifty")
	if err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Exported 41 row(s)") {
		t.Fatalf("unexpected output: %s", out)
	}

	matches, _ := filepath.Glob(filepath.Join(root, "exports", "*_thrifty.csv"))
	if len(matches) != 1 {
		t.Fatalf("expected one thrifty export, got %v", matches)
	}
	if _, err := os.Stat(filepath.Join(root, "exports", "index.jsonl")); err != nil {
		t.Fatalf("expected index.jsonl: %v", err)
	}
}

func TestExport_ToFileAndStdout(t *testing.T) {
	root := newWorkspace(t)
	target := filepath.Join(t.TempDir(), "out.csv")

	if _, err := runCLI(t, "export", "-w", root, "-o", target); err != nil {
		t.Fatalf("export to file: %v", err)
	}
	b, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "Y,YD,C\n") {
		t.Fatalf("unexpected csv: %s", b)
	}

	out, err := runCLI(t, "export", "-w", root, "-o", "-", "--y-max", "0")
	if err != nil {
		t.Fatalf("export to stdout: %v", err)
	}
	if out != "Y,YD,C\n0.0,-200.0,50.0\n" {
		t.Fatalf("unexpected stdout csv: %q", out)
	}
}

func TestScenarios_NewNoInputAndList(t *testing.T) {
	root := newWorkspace(t)

	out, err := runCLI(t, "scenarios", "new", "-w", root, "--no-input", "--name", "Low Tax", "--taxes", "50")
	if err != nil {
		t.Fatalf("scenarios new: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(root, "scenarios", "low-tax.yaml")); err != nil {
		t.Fatalf("expected scenario file: %v", err)
	}

	out, err = runCLI(t, "scenarios", "list", "-w", root)
	if err != nil {
		t.Fatalf("scenarios list: %v", err)
	}
	for _, want := range []string{"baseline", "high-taxes", "thrifty", "Low Tax"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in list output:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "generate", "-w", root, "-s", "low-tax", "--format", "csv", "--y-max", "0")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "0.0,-50.0,162.5") {
		t.Fatalf("expected saved taxes to apply, got:\n%s", out)
	}
}

func TestScenarios_NewNoInputRequiresName(t *testing.T) {
	root := newWorkspace(t)
	if _, err := runCLI(t, "scenarios", "new", "-w", root, "--no-input"); err == nil {
		t.Fatal("expected error without --name")
	}
}

func TestScenarios_NewRejectsInvalidStep(t *testing.T) {
	root := newWorkspace(t)
	_, err := runCLI(t, "scenarios", "new", "-w", root, "--no-input", "--name", "bad", "--step", "-5")
	if !domain.IsKind(err, domain.KindInvalidParameter) {
		t.Fatalf("expected invalid_parameter, got %v", err)
	}
}

func TestInit_CreatesWorkspace(t *testing.T) {
	root := filepath.Join(t.TempDir(), "ws")

	out, err := runCLI(t, "init", "--path", root)
	if err != nil {
		t.Fatalf("init: %v\n%s", err, out)
	}
	for _, p := range []string{"consumo.yaml", "scenarios/baseline.yaml", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(p))); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "consumo ") {
		t.Fatalf("unexpected version output %q", out)
	}
}
