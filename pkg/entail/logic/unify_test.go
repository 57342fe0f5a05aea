package logic

import (
	"errors"
	"testing"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

func mustLit(t *testing.T, s string) Literal {
	t.Helper()
	lit, err := ParseLiteral(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return lit
}

func TestUnifyBindsVariables(t *testing.T) {
	sub, err := Unify(mustLit(t, "Parent(x, y)"), mustLit(t, "Parent(John, Mary)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sub) != 2 {
		t.Fatalf("got %d bindings, want 2: %v", len(sub), sub)
	}
	if sub["x"].Symbol != "John" || sub["y"].Symbol != "Mary" {
		t.Errorf("sub = %v, want x→John, y→Mary", sub)
	}
}

// x cannot bind to both John and Mary; this must fail, not return an
// empty substitution.
func TestUnifyConflictingBinding(t *testing.T) {
	_, err := Unify(mustLit(t, "Parent(x, x)"), mustLit(t, "Parent(John, Mary)"))
	if err == nil {
		t.Fatal("expected failure")
	}
	if !errors.Is(err, internalerr.ErrNoUnifier) {
		t.Errorf("error %v should wrap ErrNoUnifier", err)
	}
}

func TestUnifyNestedCompound(t *testing.T) {
	sub, err := Unify(mustLit(t, "Loves(father(x), x)"), mustLit(t, "Loves(father(John), John)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sub) != 1 || sub["x"].Symbol != "John" {
		t.Errorf("sub = %v, want {x→John}", sub)
	}
}

// Identical ground atoms unify with an empty substitution; that is a
// success and must be distinguishable from failure.
func TestUnifyGroundIdentical(t *testing.T) {
	sub, err := Unify(mustLit(t, "King(John)"), mustLit(t, "King(John)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sub) != 0 {
		t.Errorf("sub = %v, want empty", sub)
	}
}

func TestUnifyPredicateMismatch(t *testing.T) {
	_, err := Unify(mustLit(t, "King(x)"), mustLit(t, "Queen(x)"))
	if !errors.Is(err, internalerr.ErrNoUnifier) {
		t.Errorf("predicate mismatch: got %v, want ErrNoUnifier", err)
	}
}

func TestUnifyArityMismatch(t *testing.T) {
	_, err := Unify(mustLit(t, "P(x)"), mustLit(t, "P(x, y)"))
	if !errors.Is(err, internalerr.ErrNoUnifier) {
		t.Errorf("arity mismatch: got %v, want ErrNoUnifier", err)
	}
}

func TestUnifyCompoundSymbolMismatch(t *testing.T) {
	_, err := Unify(mustLit(t, "Loves(father(x), x)"), mustLit(t, "Loves(mother(John), John)"))
	if !errors.Is(err, internalerr.ErrNoUnifier) {
		t.Errorf("got %v, want ErrNoUnifier", err)
	}
}

func TestUnifyThreadsSubstitution(t *testing.T) {
	// After x binds to John, the second argument pair must be checked
	// under that binding.
	sub, err := Unify(mustLit(t, "P(x, x)"), mustLit(t, "P(John, John)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub["x"].Symbol != "John" {
		t.Errorf("sub = %v", sub)
	}
}

func TestApplyResolvesChains(t *testing.T) {
	sub := Substitution{"x": Var("y"), "y": Const("John")}
	got := Apply(sub, Var("x"))
	if got.Symbol != "John" {
		t.Errorf("chained lookup = %v, want John", got)
	}
}

func TestApplyDescendsIntoCompound(t *testing.T) {
	sub := Substitution{"x": Const("John")}
	got := Apply(sub, Compound("father", Var("x")))
	if got.String() != "father(John)" {
		t.Errorf("got %v, want father(John)", got)
	}
}

func TestApplyLiteralPreservesPolarity(t *testing.T) {
	sub := Substitution{"x": Const("John")}
	lit := ApplyLiteral(sub, mustLit(t, "¬Greedy(x)"))
	if lit.String() != "¬Greedy(John)" {
		t.Errorf("got %v", lit)
	}
}
