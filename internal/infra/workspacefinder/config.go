package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/consumo/internal/app/template"
	"github.com/aalvaropc/consumo/internal/domain"
)

// ConfigFile is the name of the workspace marker and configuration file.
const ConfigFile = "consumo.yaml"

// LoadConfig loads consumo.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	c := y.Consumo
	if c.Defaults.Scenario != "" {
		cfg.Defaults.Scenario = c.Defaults.Scenario
	}
	if c.Axes.XMin != nil {
		cfg.Axes.XMin = *c.Axes.XMin
	}
	if c.Axes.XMax != nil {
		cfg.Axes.XMax = *c.Axes.XMax
	}
	if c.Axes.YMin != nil {
		cfg.Axes.YMin = *c.Axes.YMin
	}
	if c.Axes.YMax != nil {
		cfg.Axes.YMax = *c.Axes.YMax
	}
	if c.PreviewRows != nil {
		cfg.PreviewRows = *c.PreviewRows
	}
	if c.Paths.ScenariosDir != "" {
		cfg.Paths.ScenariosDir = c.Paths.ScenariosDir
	}
	if c.Paths.ExportsDir != "" {
		cfg.Paths.ExportsDir = c.Paths.ExportsDir
	}
	if c.Exports.NameTemplate != "" {
		cfg.Exports.NameTemplate = c.Exports.NameTemplate
	}

	if err := validateConfig(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return cfg, nil
}

func validateConfig(cfg domain.Config) error {
	if err := cfg.Axes.Validate(); err != nil {
		return fmt.Errorf("axes: %w", err)
	}
	if cfg.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must be >= 0 (got %d): %w", cfg.PreviewRows, domain.ErrInvalidConfig)
	}

	keys, err := template.Placeholders(cfg.Exports.NameTemplate)
	if err != nil {
		return fmt.Errorf("exports.name_template: %w", err)
	}
	for _, k := range keys {
		if k != "timestamp" && k != "scenario" {
			return fmt.Errorf("exports.name_template: unknown placeholder %q: %w", k, domain.ErrInvalidConfig)
		}
	}
	return nil
}

type yamlConfig struct {
	Consumo struct {
		Defaults struct {
			Scenario string `yaml:"scenario"`
		} `yaml:"defaults"`

		Axes struct {
			XMin *float64 `yaml:"x_min"`
			XMax *float64 `yaml:"x_max"`
			YMin *float64 `yaml:"y_min"`
			YMax *float64 `yaml:"y_max"`
		} `yaml:"axes"`

		PreviewRows *int `yaml:"preview_rows"`

		Paths struct {
			ScenariosDir string `yaml:"scenarios_dir"`
			ExportsDir   string `yaml:"exports_dir"`
		} `yaml:"paths"`

		Exports struct {
			NameTemplate string `yaml:"name_template"`
		} `yaml:"exports"`
	} `yaml:"consumo"`
}
