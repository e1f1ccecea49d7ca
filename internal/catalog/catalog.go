// Package catalog holds the static rule taxonomy that maps health-profile
// keys to candidate supplements and presentation metadata. The catalog is
// loaded once at startup and never mutated, so it may be shared across
// concurrent requests without locking.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DosagePair is the presentation metadata attached to one supplement.
type DosagePair struct {
	Dosage string `yaml:"dosage"`
	Usage  string `yaml:"usage"`
}

// DosageRule assigns a DosagePair to any supplement whose name contains
// Keyword (case-insensitive). Rules are evaluated in declaration order and
// the first match wins.
type DosageRule struct {
	Keyword string `yaml:"keyword"`
	Dosage  string `yaml:"dosage"`
	Usage   string `yaml:"usage"`
}

// ConditionGroup is one sub-key of a nested condition entry.
type ConditionGroup struct {
	Name        string   `yaml:"name"`
	Supplements []string `yaml:"supplements"`
}

// ConditionEntry is a tagged variant: either a flat supplement list or an
// ordered set of sub-key groups, never both.
type ConditionEntry struct {
	Supplements []string         `yaml:"supplements,omitempty"`
	Groups      []ConditionGroup `yaml:"groups,omitempty"`
}

// Nested reports whether the entry uses the two-level form.
func (entry ConditionEntry) Nested() bool {
	return len(entry.Groups) > 0
}

type Catalog struct {
	Symptoms      map[string][]string       `yaml:"symptoms"`
	BodySystems   map[string][]string       `yaml:"bodySystems"`
	Conditions    map[string]ConditionEntry `yaml:"conditions"`
	DosageRules   []DosageRule              `yaml:"dosageRules"`
	DefaultDosage DosagePair                `yaml:"defaultDosage"`
	Fallback      []string                  `yaml:"fallback"`
}

// DosageFor resolves presentation metadata for a supplement name. Names are
// data-driven, so the match is keyword-based rather than exact.
func (cat *Catalog) DosageFor(supplement string) DosagePair {
	lowered := strings.ToLower(supplement)
	for _, rule := range cat.DosageRules {
		if strings.Contains(lowered, strings.ToLower(rule.Keyword)) {
			return DosagePair{Dosage: rule.Dosage, Usage: rule.Usage}
		}
	}
	return cat.DefaultDosage
}

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates catalog YAML.
func Parse(raw []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (cat *Catalog) validate() error {
	if len(cat.Fallback) == 0 {
		return errors.New("catalog: fallback supplement list must not be empty")
	}
	for key, entry := range cat.Conditions {
		flat := len(entry.Supplements) > 0
		nested := len(entry.Groups) > 0
		if flat == nested {
			return fmt.Errorf("catalog: condition %q must have either supplements or groups", key)
		}
	}
	if cat.DefaultDosage.Dosage == "" || cat.DefaultDosage.Usage == "" {
		return errors.New("catalog: default dosage pair must be set")
	}
	return nil
}
