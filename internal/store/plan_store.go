package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is the YAML search description a collaborator hands to the search
// command. Everything the orchestrator enumerates is named here.
type Plan struct {
	Routes    []string `yaml:"routes"`
	Classings []string `yaml:"classings"`
	Periods   []int    `yaml:"periods"`
	// Phases empty means every phase 0..L-1.
	Phases   []int    `yaml:"phases,omitempty"`
	Families []string `yaml:"families"`
	PerClass bool     `yaml:"per_class,omitempty"`

	Autokey struct {
		Enabled bool `yaml:"enabled"`
		Delay   int  `yaml:"delay,omitempty"`
		Passes  int  `yaml:"passes,omitempty"`
	} `yaml:"autokey,omitempty"`

	Policy struct {
		ForbidIdentity bool `yaml:"forbid_identity"`
	} `yaml:"policy,omitempty"`

	// Protected positions must stay fixed under every route ("NA-only").
	Protected []int `yaml:"protected,omitempty"`

	Workers int `yaml:"workers,omitempty"`
	Budget  int `yaml:"budget,omitempty"`
}

// LoadPlan reads and sanity-checks a YAML plan.
func LoadPlan(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	var plan Plan
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return Plan{}, fmt.Errorf("plan %s: %w", path, err)
	}
	if len(plan.Classings) == 0 || len(plan.Periods) == 0 || len(plan.Families) == 0 {
		return Plan{}, fmt.Errorf("plan %s must name classings, periods and families", path)
	}
	for _, period := range plan.Periods {
		if period <= 0 {
			return Plan{}, fmt.Errorf("plan %s: period %d is not positive", path, period)
		}
	}
	return plan, nil
}
