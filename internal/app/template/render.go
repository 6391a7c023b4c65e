// Package template expands {{name}} placeholders, used for export file names.
package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/consumo/internal/domain"
)

const op = "template.render"

// RenderString replaces {{key}} placeholders with values. A missing key or
// a malformed placeholder is an invalid_config error.
func RenderString(input string, values map[string]string) (string, error) {
	var out strings.Builder
	err := walk(input, func(literal, key string) error {
		out.WriteString(literal)
		if key == "" {
			return nil
		}
		v, ok := values[key]
		if !ok {
			return invalid("unknown placeholder %q", key)
		}
		out.WriteString(v)
		return nil
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// Placeholders lists the keys referenced by input, in order of appearance.
func Placeholders(input string) ([]string, error) {
	var keys []string
	err := walk(input, func(_, key string) error {
		if key != "" {
			keys = append(keys, key)
		}
		return nil
	})
	return keys, err
}

func walk(input string, fn func(literal, key string) error) error {
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			return fn(rest, "")
		}

		literal := rest[:start]
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return invalid("unclosed placeholder")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return invalid("empty placeholder")
		}
		if err := fn(literal, key); err != nil {
			return err
		}
		rest = rest[end+2:]
	}
}

func invalid(format string, args ...any) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf(format+": %w", append(args, domain.ErrInvalidConfig)...),
	}
}
