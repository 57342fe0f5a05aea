package prop

import (
	"sort"
	"testing"
)

// isCNF reports whether f contains only And, Or, Atom and Not-of-Atom
// nodes, with no And nested under an Or.
func isCNF(f Formula, underOr bool) bool {
	switch f := f.(type) {
	case Atom:
		return true
	case Not:
		_, ok := f.F.(Atom)
		return ok
	case Or:
		return isCNF(f.A, true) && isCNF(f.B, true)
	case And:
		if underOr {
			return false
		}
		for _, sub := range f.Subs {
			if !isCNF(sub, false) {
				return false
			}
		}
		return true
	}
	return false
}

// evalEqual brute-forces every assignment of the given atoms and
// checks that both formulas agree.
func evalEqual(t *testing.T, a, b Formula, atoms []string) {
	t.Helper()
	n := len(atoms)
	for bits := 0; bits < 1<<n; bits++ {
		model := make(map[string]bool, n)
		for i, atom := range atoms {
			model[atom] = bits&(1<<i) != 0
		}
		if a.Eval(model) != b.Eval(model) {
			t.Errorf("formulas disagree under %v: %s vs %s", model, a, b)
		}
	}
}

func TestCNFPreservesSemantics(t *testing.T) {
	cases := []struct {
		f     Formula
		atoms []string
	}{
		{Iff{Atom("A"), Atom("B")}, []string{"A", "B"}},
		{Implies{Atom("A"), Atom("B")}, []string{"A", "B"}},
		{Not{Conj(Atom("A"), Atom("B"))}, []string{"A", "B"}},
		{Not{Or{Atom("A"), Atom("B")}}, []string{"A", "B"}},
		{Not{Not{Atom("A")}}, []string{"A"}},
		{Or{Conj(Atom("A"), Atom("B")), Atom("C")}, []string{"A", "B", "C"}},
		{Iff{Atom("B11"), Or{Atom("P12"), Atom("P21")}}, []string{"B11", "P12", "P21"}},
		{Not{Implies{Atom("A"), Atom("B")}}, []string{"A", "B"}},
		{Implies{Iff{Atom("A"), Atom("B")}, Or{Atom("C"), Not{Atom("A")}}}, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		cnf := CNF(tc.f)
		if !isCNF(cnf, false) {
			t.Errorf("CNF(%s) = %s is not in conjunctive normal form", tc.f, cnf)
		}
		evalEqual(t, tc.f, cnf, tc.atoms)
	}
}

func TestClausesRoundTrip(t *testing.T) {
	// CNF(AND(A, OR(B, C))) must extract exactly {{A}, {B, C}}.
	f := Conj(Atom("A"), Or{Atom("B"), Atom("C")})
	clauses := Clauses(CNF(f))
	if len(clauses) != 2 {
		t.Fatalf("got %d clauses, want 2: %v", len(clauses), clauses)
	}
	keys := []string{clauses[0].Key(), clauses[1].Key()}
	sort.Strings(keys)
	if keys[0] != "A" || keys[1] != "B ∨ C" {
		t.Errorf("clauses = %v", keys)
	}
}

func TestClausesUnitNegated(t *testing.T) {
	clauses := Clauses(CNF(Not{Atom("P11")}))
	if len(clauses) != 1 || clauses[0].Len() != 1 {
		t.Fatalf("got %v, want one unit clause", clauses)
	}
	lit := clauses[0].Literals()[0]
	if !lit.Negated || lit.Predicate != "P11" {
		t.Errorf("literal = %v, want ¬P11", lit)
	}
}

func TestClausesFlattenNestedOr(t *testing.T) {
	f := Or{Atom("A"), Or{Atom("B"), Or{Atom("C"), Atom("D")}}}
	clauses := Clauses(f)
	if len(clauses) != 1 {
		t.Fatalf("got %d clauses, want 1", len(clauses))
	}
	if clauses[0].Len() != 4 {
		t.Errorf("clause = %v, want 4 literals", clauses[0])
	}
}

func TestCNFDegenerateConjunctions(t *testing.T) {
	if got := CNF(Conj()); got != True {
		t.Errorf("CNF of empty conjunction = %v, want ⊤", got)
	}
	if got := CNF(Not{Conj()}); got != False {
		t.Errorf("CNF of negated empty conjunction = %v, want ⊥", got)
	}
	if got := CNF(Conj(Atom("A"))); got != Atom("A") {
		t.Errorf("CNF of single-operand conjunction = %v, want A", got)
	}
	if got := CNF(Or{Atom("A"), Not{Conj()}}); got != Atom("A") {
		t.Errorf("A ∨ ⊥ = %v, want A", got)
	}

	if got := Clauses(True); len(got) != 0 {
		t.Errorf("⊤ clauses = %v, want none", got)
	}
	got := Clauses(False)
	if len(got) != 1 || !got[0].IsEmpty() {
		t.Errorf("⊥ clauses = %v, want the empty clause", got)
	}
}

func TestCNFIffExpansion(t *testing.T) {
	clauses := Clauses(CNF(Iff{Atom("B11"), Or{Atom("P12"), Atom("P21")}}))
	// B11 ↔ (P12 ∨ P21) yields {¬B11, P12, P21}, {¬P12, B11}, {¬P21, B11}.
	if len(clauses) != 3 {
		t.Errorf("got %d clauses: %v", len(clauses), clauses)
	}
}
