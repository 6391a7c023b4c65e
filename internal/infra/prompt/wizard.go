// Package prompt asks for scenario parameters interactively on a terminal.
package prompt

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/aalvaropc/consumo/internal/domain"
)

// AskFunc matches survey.Ask.
type AskFunc func(qs []*survey.Question, response interface{}, opts ...survey.AskOpt) error

type Wizard struct {
	ask  AskFunc
	opts []survey.AskOpt
}

type Option func(*Wizard)

// WithAskFunc replaces survey.Ask (tests).
func WithAskFunc(fn AskFunc) Option {
	return func(w *Wizard) { w.ask = fn }
}

// WithAskOpts forwards options such as survey.WithStdio to every prompt.
func WithAskOpts(opts ...survey.AskOpt) Option {
	return func(w *Wizard) { w.opts = append(w.opts, opts...) }
}

func NewWizard(opts ...Option) *Wizard {
	w := &Wizard{ask: survey.Ask}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type answers struct {
	Name  string `survey:"name"`
	C0    string `survey:"c0"`
	C1    string `survey:"c1"`
	Taxes string `survey:"taxes"`
	YMin  string `survey:"y_min"`
	YMax  string `survey:"y_max"`
	Step  string `survey:"step"`
}

// AskScenario prompts for a scenario name and every parameter, offering
// defaults as pre-filled answers.
func (w *Wizard) AskScenario(defaults domain.Params) (domain.Scenario, error) {
	qs := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Scenario name"},
			Validate: survey.Required,
		},
		numberQuestion("c0", "c₀ (autonomous consumption)", defaults.C0, nil),
		numberQuestion("c1", "c₁ (marginal propensity to consume, 0-1)", defaults.C1, unitInterval),
		numberQuestion("taxes", "T (taxes)", defaults.Taxes, nil),
		numberQuestion("y_min", "Ymin (total income)", defaults.YMin, nil),
		numberQuestion("y_max", "Ymax (total income)", defaults.YMax, nil),
		numberQuestion("step", "ΔY (step)", defaults.Step, positive),
	}

	var a answers
	if err := w.ask(qs, &a, w.opts...); err != nil {
		return domain.Scenario{}, &domain.OpError{
			Op:   "prompt.scenario",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	return toScenario(a)
}

func toScenario(a answers) (domain.Scenario, error) {
	var p domain.Params
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"c0", a.C0, &p.C0},
		{"c1", a.C1, &p.C1},
		{"taxes", a.Taxes, &p.Taxes},
		{"y_min", a.YMin, &p.YMin},
		{"y_max", a.YMax, &p.YMax},
		{"step", a.Step, &p.Step},
	}
	for _, f := range fields {
		v, err := parseNumber(f.raw)
		if err != nil {
			return domain.Scenario{}, domain.InvalidParameter("prompt.scenario", f.name, "%v", err)
		}
		*f.dst = v
	}

	return domain.Scenario{Name: strings.TrimSpace(a.Name), Params: p}, nil
}

func numberQuestion(name, msg string, def float64, extra func(float64) error) *survey.Question {
	return &survey.Question{
		Name:   name,
		Prompt: &survey.Input{Message: msg, Default: strconv.FormatFloat(def, 'f', -1, 64)},
		Validate: func(ans interface{}) error {
			s, _ := ans.(string)
			v, err := parseNumber(s)
			if err != nil {
				return err
			}
			if extra != nil {
				return extra(v)
			}
			return nil
		},
	}
}

var reGrouped = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)

// parseNumber accepts thousands-grouped input ("1,200.50"), a decimal
// point, or a single decimal comma ("0,75"). Any other comma is rejected.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("a number is required")
	}

	in := s
	switch {
	case reGrouped.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ",") == 1 && !strings.Contains(s, "."):
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", in)
	}
	return v, nil
}

func unitInterval(v float64) error {
	if v < 0 || v > 1 {
		return errors.New("must be between 0 and 1")
	}
	return nil
}

func positive(v float64) error {
	if v <= 0 {
		return errors.New("must be greater than 0")
	}
	return nil
}
