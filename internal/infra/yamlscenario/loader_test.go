package yamlscenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/consumo/internal/domain"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadScenario_ByName(t *testing.T) {
	root := t.TempDir()
	writeScenario(t, filepath.Join(root, "scenarios"), "high-taxes.yaml", `
name: High taxes
params:
  c0: 150
  c1: 0.6
  taxes: 400
  y_min: 0
  y_max: 3000
  step: 250
axes:
  x_max: 3000
`)

	l := NewLoader(root)
	sc, err := l.LoadScenario("high-taxes")
	if err != nil {
		t.Fatalf("LoadScenario error: %v", err)
	}

	want := domain.Params{C0: 150, C1: 0.6, Taxes: 400, YMin: 0, YMax: 3000, Step: 250}
	if diff := cmp.Diff(want, sc.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
	if sc.Name != "High taxes" {
		t.Fatalf("expected name High taxes, got %q", sc.Name)
	}
	axes := sc.Axes.Apply(domain.DefaultAxes())
	if axes.XMax != 3000 || axes.YMax != 2000 {
		t.Fatalf("unexpected axes %+v", axes)
	}
}

func TestLoadScenario_PartialParamsUseDefaults(t *testing.T) {
	root := t.TempDir()
	p := writeScenario(t, root, "lean.yml", "params:\n  c1: 0.9\n  taxes: 0\n")

	sc, err := NewLoader(root).LoadScenario(p)
	if err != nil {
		t.Fatalf("LoadScenario error: %v", err)
	}

	want := domain.DefaultParams()
	want.C1 = 0.9
	want.Taxes = 0
	if diff := cmp.Diff(want, sc.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
	if sc.Name != "lean" {
		t.Fatalf("expected name from file, got %q", sc.Name)
	}
	if !sc.Axes.IsZero() {
		t.Fatalf("expected no axis override")
	}
}

func TestLoadScenario_Errors(t *testing.T) {
	root := t.TempDir()
	l := NewLoader(root)

	if _, err := l.LoadScenario("missing"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}

	writeScenario(t, filepath.Join(root, "scenarios"), "bad.yaml", "params:\n  c0: [1, 2]\n")
	if _, err := l.LoadScenario("bad"); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestListScenarios_SortedByName(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "params")
	writeScenario(t, dir, "b.yaml", "name: Zeta\n")
	writeScenario(t, dir, "a.yaml", "name: Alpha\n")
	writeScenario(t, dir, "untitled.yml", "params: {}\n")
	writeScenario(t, dir, "notes.txt", "ignored")

	refs, err := NewLoader(root, WithScenariosDir("params")).ListScenarios(root)
	if err != nil {
		t.Fatalf("ListScenarios error: %v", err)
	}

	var names []string
	for _, r := range refs {
		names = append(names, r.Name)
	}
	if diff := cmp.Diff([]string{"Alpha", "Zeta", "untitled"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestListScenarios_MissingDir(t *testing.T) {
	_, err := NewLoader("").ListScenarios(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestSaveScenario_RoundTrip(t *testing.T) {
	root := t.TempDir()
	l := NewLoader(root)

	yMax := 2500.0
	in := domain.Scenario{
		Name:   "Zero taxes",
		Params: domain.Params{C0: 100, C1: 0.8, Taxes: 0, YMin: 0, YMax: 1000, Step: 50},
		Axes:   domain.AxisOverride{YMax: &yMax},
	}

	path, err := l.SaveScenario(in)
	if err != nil {
		t.Fatalf("SaveScenario error: %v", err)
	}
	if filepath.Base(path) != "zero-taxes.yaml" {
		t.Fatalf("unexpected file %s", path)
	}

	out, err := l.LoadScenario("zero-taxes")
	if err != nil {
		t.Fatalf("LoadScenario error: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("scenario mismatch (-want +got):\n%s", diff)
	}

	if _, err := l.SaveScenario(in); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected overwrite to be refused, got %v", err)
	}
}

func TestSaveScenario_RequiresName(t *testing.T) {
	_, err := NewLoader(t.TempDir()).SaveScenario(domain.Scenario{Name: "  "})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestSaveScenario_ExistingFileIsLeftIntact(t *testing.T) {
	root := t.TempDir()
	l := NewLoader(root)

	first, err := l.SaveScenario(domain.Scenario{Name: "Baseline", Params: domain.DefaultParams()})
	if err != nil {
		t.Fatalf("SaveScenario error: %v", err)
	}
	before, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}

	other := domain.Scenario{Name: "baseline", Params: domain.Params{C0: 1, C1: 0.1, Taxes: 1, YMin: 0, YMax: 10, Step: 1}}
	_, err = l.SaveScenario(other)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}

	after, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(before), string(after)); diff != "" {
		t.Fatalf("existing scenario rewritten (-before +after):\n%s", diff)
	}
}
