// Package resolution implements binary resolution and the
// saturation-based refutation loop that decides entailment.
package resolution

import "github.com/cognicore/entail/pkg/entail/logic"

// Resolve applies the resolution rule to every complementary literal
// pair across the two clauses and returns the distinct resolvents. For
// first-order literals the pair must unify and the unifier is applied
// to the remaining literals; zero-argument (propositional) literals
// resolve on symbol and polarity alone. A pair that fails to unify
// simply contributes no resolvent. The result is empty when no
// complementary pair resolves.
func Resolve(a, b logic.Clause) []logic.Clause {
	var out []logic.Clause
	seen := make(map[string]struct{})

	for _, la := range a.Literals() {
		for _, lb := range b.Literals() {
			if !la.Complementary(lb) {
				continue
			}

			var sub logic.Substitution
			if len(la.Args) > 0 {
				var err error
				sub, err = logic.Unify(la, lb)
				if err != nil {
					continue
				}
			}

			resolvent := resolvent(a, b, la, lb, sub)
			key := resolvent.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, resolvent)
		}
	}
	return out
}

// resolvent forms (a ∪ b) − {la, lb} with the substitution applied to
// every remaining literal.
func resolvent(a, b logic.Clause, la, lb logic.Literal, sub logic.Substitution) logic.Clause {
	var lits []logic.Literal
	for _, l := range a.Literals() {
		if !l.Equal(la) {
			lits = append(lits, l)
		}
	}
	for _, l := range b.Literals() {
		if !l.Equal(lb) {
			lits = append(lits, l)
		}
	}
	if len(sub) > 0 {
		for i, l := range lits {
			lits[i] = logic.ApplyLiteral(sub, l)
		}
	}
	return logic.NewClause(lits...)
}
