package logic

import "testing"

func TestClauseDeduplicates(t *testing.T) {
	c := NewClause(Atom("A"), Atom("B"), Atom("A"))
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
}

func TestClauseEqualityIgnoresOrder(t *testing.T) {
	a := NewClause(Atom("A"), Atom("B"))
	b := NewClause(Atom("B"), Atom("A"))
	if !a.Equal(b) {
		t.Error("clauses with same literal set should be equal")
	}
	if a.Key() != b.Key() {
		t.Errorf("keys differ: %q vs %q", a.Key(), b.Key())
	}
}

func TestClausePolarityMatters(t *testing.T) {
	a := NewClause(Atom("A"))
	b := NewClause(Atom("A").Negate())
	if a.Equal(b) {
		t.Error("A and ¬A should not be equal clauses")
	}
}

func TestEmptyClause(t *testing.T) {
	c := NewClause()
	if !c.IsEmpty() {
		t.Error("clause with no literals should be empty")
	}
	if NewClause(Atom("A")).IsEmpty() {
		t.Error("unit clause is not empty")
	}
}

func TestParseClause(t *testing.T) {
	c, err := ParseClause([]string{"¬King(x)", "¬Greedy(x)", "Evil(x)"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3", c.Len())
	}
	if !c.Literals()[0].Negated || c.Literals()[2].Negated {
		t.Errorf("polarity lost in %v", c)
	}
}

func TestApplyClauseCollapsesDuplicates(t *testing.T) {
	c := NewClause(Pred("P", Var("x")), Pred("P", Const("John")))
	got := ApplyClause(Substitution{"x": Const("John")}, c)
	if got.Len() != 1 {
		t.Errorf("substituted clause = %v, want single literal", got)
	}
}
