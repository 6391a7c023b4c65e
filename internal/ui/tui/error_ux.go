package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/consumo/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindInvalidParameter:
			detail := invalidParameterDetail(oe)
			if detail == "" {
				return "Invalid parameter"
			}
			return "Invalid parameter: " + detail

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlscenario") {
				return "Scenario not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindExecution:
			if strings.Contains(oe.Op, "export") {
				return "Export failed (see logs)"
			}
			return "Unexpected error (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

// invalidParameterDetail turns "step: must be > 0 (got 0): invalid parameter"
// into "step must be > 0 (got 0)".
func invalidParameterDetail(oe *domain.OpError) string {
	if oe.Err == nil {
		return ""
	}
	s := strings.TrimSuffix(oe.Err.Error(), ": "+domain.ErrInvalidParameter.Error())
	if s == domain.ErrInvalidParameter.Error() {
		return ""
	}
	return strings.Replace(s, ": ", " ", 1)
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
