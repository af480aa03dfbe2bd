// Package classify maps stray documentation filenames to canonical docs/
// destinations using an ordered keyword-rule table. The table is data, not
// code: adding a destination is a one-line change to rules.yaml.
package classify

import (
	_ "embed"
	"strings"

	"github.com/fwojciec/doctidy"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// Rule routes filenames containing all of its keywords to Dest.
type Rule struct {
	Keywords []string `yaml:"keywords"`
	Dest     string   `yaml:"dest"`
}

// Ensure Table implements doctidy.Classifier at compile time.
var _ doctidy.Classifier = (*Table)(nil)

// Table is an ordered, first-match-wins classification rule table.
type Table struct {
	Rules   []Rule `yaml:"rules"`
	Default string `yaml:"default"`
}

// NewTable returns the built-in rule table.
func NewTable() (*Table, error) {
	t := &Table{}
	if err := yaml.Unmarshal(rulesYAML, t); err != nil {
		return nil, doctidy.Errorf(doctidy.EINTERNAL, "parse embedded rule table: %s", err)
	}
	if len(t.Rules) == 0 || t.Default == "" {
		return nil, doctidy.Errorf(doctidy.EINTERNAL, "embedded rule table is incomplete")
	}
	return t, nil
}

// Classify returns the root-relative destination directory for a filename
// stem. Matching is case-insensitive substring containment against the
// uppercased stem; rules are tried in table order and the first rule whose
// keywords are all present wins.
func (t *Table) Classify(stem string) string {
	name := strings.ToUpper(stem)
	for _, rule := range t.Rules {
		if containsAll(name, rule.Keywords) {
			return rule.Dest
		}
	}
	return t.Default
}

func containsAll(name string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(name, kw) {
			return false
		}
	}
	return true
}
