package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/store"
)

// KBFile is the YAML format for knowledge base files:
//
//	name: royals
//	dialect: first_order
//	clauses:
//	  - ["¬King(x)", "¬Greedy(x)", "Evil(x)"]
//	  - ["King(John)"]
//	  - ["Greedy(John)"]
//	queries:
//	  - "Evil(John)"
//
// Propositional files may also carry pre-CNF formulas in connective
// expression form:
//
//	formulas:
//	  - "(IFF, B11, (OR, P12, P21))"
type KBFile struct {
	Name     string     `yaml:"name"`
	Dialect  string     `yaml:"dialect"`
	Clauses  [][]string `yaml:"clauses"`
	Formulas []string   `yaml:"formulas"`
	Queries  []string   `yaml:"queries"`
}

// LoadKB reads and validates a knowledge base file.
func LoadKB(path string) (KBFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KBFile{}, err
	}
	var kb KBFile
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return KBFile{}, fmt.Errorf("parse knowledge base: %w", err)
	}
	if kb.Name == "" {
		return KBFile{}, fmt.Errorf("knowledge base needs a name: %w", internalerr.ErrInvalidConfig)
	}
	switch kb.Dialect {
	case "propositional", "first_order":
	case "":
		kb.Dialect = "first_order"
	default:
		return KBFile{}, fmt.Errorf("dialect %q: %w", kb.Dialect, internalerr.ErrInvalidConfig)
	}
	if kb.Dialect == "first_order" && len(kb.Formulas) > 0 {
		return KBFile{}, fmt.Errorf("formulas are propositional only: %w", internalerr.ErrInvalidConfig)
	}
	return kb, nil
}

// StoreKB converts a loaded file into the stored representation.
func (f KBFile) StoreKB() store.KB {
	return store.KB{
		Name:     f.Name,
		Dialect:  f.Dialect,
		Clauses:  f.Clauses,
		Formulas: f.Formulas,
	}
}
