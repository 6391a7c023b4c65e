package domain

// Config represents the consumo workspace configuration loaded from consumo.yaml.
type Config struct {
	Defaults    DefaultsConfig
	Axes        AxisBounds
	PreviewRows int
	Paths       PathsConfig
	Exports     ExportsConfig
}

type DefaultsConfig struct {
	Scenario string
}

type PathsConfig struct {
	ScenariosDir string
	ExportsDir   string
}

type ExportsConfig struct {
	// NameTemplate is rendered with {{timestamp}} and {{scenario}}.
	NameTemplate string
}

// DefaultConfig provides sane defaults if consumo.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Scenario: "baseline",
		},
		Axes:        DefaultAxes(),
		PreviewRows: 15,
		Paths: PathsConfig{
			ScenariosDir: "scenarios",
			ExportsDir:   "exports",
		},
		Exports: ExportsConfig{
			NameTemplate: "{{timestamp}}_{{scenario}}",
		},
	}
}
