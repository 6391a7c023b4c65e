package yamlscenario

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/ports"
)

type Loader struct {
	rootDir      string
	scenariosDir string
}

type Option func(*Loader)

func WithScenariosDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.scenariosDir = dir
		}
	}
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{rootDir: root, scenariosDir: "scenarios"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	_ ports.ScenarioLoader = (*Loader)(nil)
	_ ports.ScenarioWriter = (*Loader)(nil)
)

// Dir returns the scenarios directory of the workspace.
func (l *Loader) Dir() string {
	return filepath.Join(l.rootDir, l.scenariosDir)
}

// LoadScenario accepts either a scenario name (e.g., "baseline") or a path to a YAML file.
func (l *Loader) LoadScenario(nameOrPath string) (domain.Scenario, error) {
	path := l.resolve(nameOrPath)

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, &domain.OpError{
			Op:   "yamlscenario.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var ys yamlScenario
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.Scenario{}, &domain.OpError{
			Op:   "yamlscenario.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapScenario(path, ys), nil
}

func (l *Loader) resolve(nameOrPath string) string {
	in := strings.TrimSpace(nameOrPath)
	if hasYAMLExt(in) || strings.ContainsRune(in, '/') || strings.ContainsRune(in, filepath.Separator) {
		return filepath.Clean(in)
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(l.Dir(), in+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(l.Dir(), in+".yaml")
}

func (l *Loader) ListScenarios(root string) ([]domain.ScenarioRef, error) {
	dir := filepath.Join(root, l.scenariosDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlscenario.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ScenarioRef
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		n, _ := readScenarioName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}

		refs = append(refs, domain.ScenarioRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// SaveScenario writes sc to <scenarios dir>/<file>.yaml, where file is
// derived from the scenario name. Existing files are not overwritten.
func (l *Loader) SaveScenario(sc domain.Scenario) (string, error) {
	file := fileName(sc.Name)
	if file == "" {
		return "", &domain.OpError{
			Op:   "yamlscenario.save",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("field name: scenario name is required: %w", domain.ErrInvalidConfig),
		}
	}

	dir := l.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{Op: "yamlscenario.save", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	path := filepath.Join(dir, file+".yaml")

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(sc)); err != nil {
		return "", &domain.OpError{Op: "yamlscenario.save", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if err := enc.Close(); err != nil {
		return "", &domain.OpError{Op: "yamlscenario.save", Kind: domain.KindExecution, Path: path, Err: err}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &domain.OpError{
				Op:   "yamlscenario.save",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("scenario file already exists: %w", domain.ErrInvalidConfig),
			}
		}
		return "", &domain.OpError{Op: "yamlscenario.save", Kind: domain.KindExecution, Path: path, Err: err}
	}

	_, werr := f.Write(buf.Bytes())
	if err := errors.Join(werr, f.Close()); err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{Op: "yamlscenario.save", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return path, nil
}

func readScenarioName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// fileName turns a scenario name into a lowercase file stem.
func fileName(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
