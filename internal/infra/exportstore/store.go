package exportstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/consumo/internal/app/template"
	"github.com/aalvaropc/consumo/internal/domain"
	"github.com/aalvaropc/consumo/internal/ports"
)

const (
	defaultExportsDir   = "exports"
	defaultNameTemplate = "{{timestamp}}_{{scenario}}"
	timestampLayout     = "20060102T150405Z"
)

// Store writes exported series under <root>/<exports dir>/ and keeps an
// optional JSONL index of what was written.
type Store struct {
	rootDir      string
	exportsDir   string
	nameTemplate string
	writeIndex   bool
	encoder      ports.SeriesEncoder
	now          func() time.Time
}

type Option func(*Store)

// WithIndex enables a simple JSONL index: exports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *Store) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(root string, cfg domain.Config, enc ports.SeriesEncoder, opts ...Option) *Store {
	dir := cfg.Paths.ExportsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultExportsDir
	}
	name := cfg.Exports.NameTemplate
	if strings.TrimSpace(name) == "" {
		name = defaultNameTemplate
	}

	s := &Store{
		rootDir:      root,
		exportsDir:   dir,
		nameTemplate: name,
		encoder:      enc,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ExportStore = (*Store)(nil)

// Dir returns the directory exports are written to.
func (s *Store) Dir() string {
	return filepath.Join(s.rootDir, s.exportsDir)
}

func (s *Store) SaveExport(a domain.ExportArtifact) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "exportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := a.CreatedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	slug := slugify(a.Scenario)
	if slug == "" {
		slug = "series"
	}

	base, err := template.RenderString(s.nameTemplate, map[string]string{
		"timestamp": ts.Format(timestampLayout),
		"scenario":  slug,
	})
	if err != nil {
		return "", err
	}
	base = strings.TrimSuffix(filepath.Base(base), ".csv")

	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, a.Series); err != nil {
		return "", err
	}

	id, err := reserve(dir, base)
	if err != nil {
		return "", err
	}
	filename := id + ".csv"
	path := filepath.Join(dir, filename)

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "exportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "exportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		if err := s.appendIndex(dir, id, filename, ts, a); err != nil {
			return id, &domain.OpError{
				Op:   "exportstore.index",
				Kind: domain.KindExecution,
				Path: filepath.Join(dir, indexFile),
				Err:  err,
			}
		}
	}

	return id, nil
}

// maxSuffix bounds the search for a free file name within one timestamp.
const maxSuffix = 1000

// reserve claims <dir>/<base>.csv, or <base>-2.csv, <base>-3.csv, ... by
// creating it exclusively, and returns the claimed stem.
func reserve(dir, base string) (string, error) {
	for n := 1; n <= maxSuffix; n++ {
		id := base
		if n > 1 {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		path := filepath.Join(dir, id+".csv")

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err == nil {
			if err := f.Close(); err != nil {
				return "", &domain.OpError{Op: "exportstore.reserve", Kind: domain.KindExecution, Path: path, Err: err}
			}
			return id, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", &domain.OpError{Op: "exportstore.reserve", Kind: domain.KindExecution, Path: path, Err: err}
		}
	}
	return "", &domain.OpError{
		Op:   "exportstore.reserve",
		Kind: domain.KindExecution,
		Path: filepath.Join(dir, base+".csv"),
		Err:  fmt.Errorf("no free file name after %d attempts", maxSuffix),
	}
}

const indexFile = "index.jsonl"

// IndexEntry is one line of exports/index.jsonl.
type IndexEntry struct {
	ID        string        `json:"id"`
	File      string        `json:"file"`
	Scenario  string        `json:"scenario"`
	Rows      int           `json:"rows"`
	Params    domain.Params `json:"params"`
	CreatedAt time.Time     `json:"created_at"`
}

func (s *Store) appendIndex(dir, id, filename string, ts time.Time, a domain.ExportArtifact) error {
	line, err := json.Marshal(IndexEntry{
		ID:        id,
		File:      filename,
		Scenario:  a.Scenario,
		Rows:      a.Series.Len(),
		Params:    a.Series.Params,
		CreatedAt: ts,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append index: %w", err)
	}
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
