package logic

import (
	"fmt"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

// Unify computes a substitution making the atoms of two literals
// syntactically identical. Polarity is ignored; callers decide whether
// they want complementary or equal polarity. Failure is reported via
// internalerr.ErrNoUnifier and is distinct from success with an empty
// substitution, which is what unifying two identical ground atoms yields.
//
// There is no occurs-check: a variable can in principle be bound to a
// term containing itself. The supported knowledge bases do not produce
// such bindings, but this is a known soundness gap.
func Unify(a, b Literal) (Substitution, error) {
	if a.Predicate != b.Predicate {
		return nil, fmt.Errorf("predicates %s and %s differ: %w", a.Predicate, b.Predicate, internalerr.ErrNoUnifier)
	}
	if len(a.Args) != len(b.Args) {
		return nil, fmt.Errorf("arity mismatch for %s (%d vs %d): %w", a.Predicate, len(a.Args), len(b.Args), internalerr.ErrNoUnifier)
	}
	sub := Substitution{}
	for i := range a.Args {
		if err := unifyTerms(a.Args[i], b.Args[i], sub); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// UnifyTerms computes a substitution making two terms identical.
func UnifyTerms(a, b Term) (Substitution, error) {
	sub := Substitution{}
	if err := unifyTerms(a, b, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// unifyTerms threads the accumulating substitution through each pair of
// argument terms; a failed pair aborts the whole unification.
func unifyTerms(a, b Term, sub Substitution) error {
	a = Apply(sub, a)
	b = Apply(sub, b)

	if a.Equal(b) {
		return nil
	}
	if a.IsVariable() {
		sub[a.Symbol] = b
		return nil
	}
	if b.IsVariable() {
		sub[b.Symbol] = a
		return nil
	}
	if a.IsCompound() && b.IsCompound() && a.Symbol == b.Symbol && len(a.Args) == len(b.Args) {
		for i := range a.Args {
			if err := unifyTerms(a.Args[i], b.Args[i], sub); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("cannot unify %s with %s: %w", a, b, internalerr.ErrNoUnifier)
}
