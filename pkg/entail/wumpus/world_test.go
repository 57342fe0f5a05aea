package wumpus

import (
	"testing"

	"github.com/cognicore/entail/pkg/entail/prop"
)

func TestWorldLayout(t *testing.T) {
	w := NewWorld()
	if len(w.Layout()) != 16 {
		t.Errorf("layout has %d cells, want 16", len(w.Layout()))
	}
}

func TestTellAsk(t *testing.T) {
	w := NewWorld()
	w.Tell("B11")

	if !w.Ask(prop.Atom("B11")) {
		t.Error("told fact should hold")
	}
	if w.Ask(prop.Atom("P11")) {
		t.Error("untold fact should not hold")
	}
	if !w.Ask(prop.Not{F: prop.Atom("P11")}) {
		t.Error("negation of untold fact should hold")
	}
	if !w.Ask(prop.Implies{A: prop.Atom("P11"), B: prop.Atom("W11")}) {
		t.Error("implication with false antecedent should hold")
	}

	w.Tell("P12")
	if !w.Ask(prop.Conj(prop.Atom("B11"), prop.Atom("P12"))) {
		t.Error("conjunction of told facts should hold")
	}
	if !w.Ask(prop.Iff{A: prop.Atom("B11"), B: prop.Or{A: prop.Atom("P12"), B: prop.Atom("P21")}}) {
		t.Error("biconditional should hold under told facts")
	}
}

func TestDemoKBParses(t *testing.T) {
	for _, s := range DemoKB() {
		if _, err := prop.ParseFormula(s); err != nil {
			t.Errorf("demo formula %q does not parse: %v", s, err)
		}
	}
}
