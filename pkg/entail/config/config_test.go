package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.Engine.MaxRounds != 100 {
		t.Errorf("max rounds = %d", cfg.Engine.MaxRounds)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
engine:
  dialect: propositional
  max_rounds: 25
store:
  path: /tmp/entail.db
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine.Dialect != "propositional" || cfg.Engine.MaxRounds != 25 {
		t.Errorf("engine = %+v", cfg.Engine)
	}
	if cfg.Store.Path != "/tmp/entail.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "engine:\n  dialect: propositional\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine.MaxRounds != 100 {
		t.Errorf("max rounds = %d, want default 100", cfg.Engine.MaxRounds)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	bad := []Config{
		{Engine: EngineConfig{Dialect: "modal", MaxRounds: 10}},
		{Engine: EngineConfig{Dialect: "first_order", MaxRounds: 0}},
		{Engine: EngineConfig{Dialect: "first_order", MaxRounds: -1}},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%+v: got %v, want ErrInvalidConfig", cfg.Engine, err)
		}
	}
}

func TestLoadKB(t *testing.T) {
	path := writeFile(t, "kb.yaml", `
name: royals
dialect: first_order
clauses:
  - ["¬King(x)", "¬Greedy(x)", "Evil(x)"]
  - ["King(John)"]
  - ["Greedy(John)"]
queries:
  - "Evil(John)"
`)
	kb, err := LoadKB(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if kb.Name != "royals" || len(kb.Clauses) != 3 || len(kb.Queries) != 1 {
		t.Errorf("kb = %+v", kb)
	}
	stored := kb.StoreKB()
	if stored.Dialect != "first_order" || len(stored.Clauses) != 3 {
		t.Errorf("stored = %+v", stored)
	}
}

func TestLoadKBDefaultsDialect(t *testing.T) {
	path := writeFile(t, "kb.yaml", "name: plain\nclauses:\n  - [\"P(a)\"]\n")
	kb, err := LoadKB(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if kb.Dialect != "first_order" {
		t.Errorf("dialect = %q", kb.Dialect)
	}
}

func TestLoadKBRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"missing name": "dialect: first_order\n",
		"bad dialect":  "name: x\ndialect: modal\n",
		"fol formulas": "name: x\ndialect: first_order\nformulas:\n  - \"(NOT, A)\"\n",
	}
	for label, content := range cases {
		path := writeFile(t, "kb.yaml", content)
		if _, err := LoadKB(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: got %v, want ErrInvalidConfig", label, err)
		}
	}
}
