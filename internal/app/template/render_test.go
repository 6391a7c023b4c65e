package template

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/consumo/internal/domain"
)

func TestRenderStringSingleKey(t *testing.T) {
	out, err := RenderString("tabla_{{scenario}}", map[string]string{"scenario": "baseline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "tabla_baseline" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleKeys(t *testing.T) {
	out, err := RenderString("{{ timestamp }}_{{scenario}}.csv", map[string]string{
		"timestamp": "20260203T101112Z",
		"scenario":  "high-taxes",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "20260203T101112Z_high-taxes.csv" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringNoPlaceholders(t *testing.T) {
	out, err := RenderString("tabla_consumo", nil)
	if err != nil || out != "tabla_consumo" {
		t.Fatalf("expected literal passthrough, got %q, %v", out, err)
	}
}

func TestRenderStringErrors(t *testing.T) {
	cases := []string{
		"{{missing}}",
		"{{scenario",
		"{{  }}",
	}
	for _, in := range cases {
		_, err := RenderString(in, map[string]string{"scenario": "x"})
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Errorf("RenderString(%q): expected invalid_config, got %v", in, err)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	keys, err := Placeholders("{{timestamp}}-{{scenario}}-{{timestamp}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"timestamp", "scenario", "timestamp"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}
