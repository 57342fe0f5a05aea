package prop

import "github.com/cognicore/entail/pkg/entail/logic"

// CNF rewrites a formula into conjunctive normal form using the
// standard equivalences: biconditional and implication elimination,
// double-negation removal, De Morgan's laws, and distribution of
// disjunction over conjunction. The result contains only And, Or, Atom
// and Not-of-Atom nodes, or a True/False constant for degenerate inputs
// such as the empty conjunction.
func CNF(f Formula) Formula {
	switch f := f.(type) {
	case Atom:
		return f
	case Iff:
		return CNF(Conj(Implies{f.A, f.B}, Implies{f.B, f.A}))
	case Implies:
		return CNF(Or{Not{f.A}, f.B})
	case Not:
		return cnfNot(f)
	case Or:
		return cnfOr(CNF(f.A), CNF(f.B))
	case And:
		subs := make([]Formula, 0, len(f.Subs))
		for _, sub := range f.Subs {
			switch c := CNF(sub); c {
			case True:
			case False:
				return False
			default:
				subs = append(subs, c)
			}
		}
		switch len(subs) {
		case 0:
			// Empty conjunction is vacuously true.
			return True
		case 1:
			return subs[0]
		}
		return And{Subs: subs}
	}
	return f
}

func cnfNot(n Not) Formula {
	switch inner := n.F.(type) {
	case trueConst:
		return False
	case falseConst:
		return True
	case Atom:
		return n
	case Not:
		return CNF(inner.F)
	case And:
		if len(inner.Subs) == 0 {
			return False
		}
		// De Morgan: push the negation to the operands and fold the
		// resulting disjunction.
		var out Formula = Not{inner.Subs[0]}
		for _, sub := range inner.Subs[1:] {
			out = Or{out, Not{sub}}
		}
		return CNF(out)
	case Or:
		return CNF(Conj(Not{inner.A}, Not{inner.B}))
	default:
		// Implication or biconditional under a negation: eliminate the
		// connective first, then renegate.
		return CNF(Not{CNF(inner)})
	}
}

// cnfOr distributes a disjunction over any conjunction produced by the
// recursive conversion of either side.
func cnfOr(left, right Formula) Formula {
	if left == True || right == True {
		return True
	}
	if left == False {
		return right
	}
	if right == False {
		return left
	}
	if la, ok := left.(And); ok {
		subs := make([]Formula, len(la.Subs))
		for i, sub := range la.Subs {
			subs[i] = Or{sub, right}
		}
		return CNF(And{Subs: subs})
	}
	if ra, ok := right.(And); ok {
		subs := make([]Formula, len(ra.Subs))
		for i, sub := range ra.Subs {
			subs[i] = Or{left, sub}
		}
		return CNF(And{Subs: subs})
	}
	return Or{left, right}
}

// Clauses flattens a CNF tree into clauses. An And node concatenates
// its operands' clauses; an Or node becomes a single clause holding
// every leaf literal under it; a bare atom or negated atom becomes a
// unit clause. True yields no clauses and False the empty clause. The
// formula must already be in CNF.
func Clauses(f Formula) []logic.Clause {
	switch f := f.(type) {
	case trueConst:
		return nil
	case falseConst:
		return []logic.Clause{logic.NewClause()}
	case And:
		var out []logic.Clause
		for _, sub := range f.Subs {
			out = append(out, Clauses(sub)...)
		}
		return out
	case Or:
		return []logic.Clause{logic.NewClause(orLiterals(f)...)}
	default:
		return []logic.Clause{logic.NewClause(toLiteral(f))}
	}
}

// orLiterals collects the leaf literals under a (possibly nested) Or.
func orLiterals(o Or) []logic.Literal {
	var lits []logic.Literal
	for _, side := range []Formula{o.A, o.B} {
		if nested, ok := side.(Or); ok {
			lits = append(lits, orLiterals(nested)...)
		} else {
			lits = append(lits, toLiteral(side))
		}
	}
	return lits
}

// toLiteral converts an Atom or Not-of-Atom CNF leaf into the shared
// literal representation used by the first-order path.
func toLiteral(f Formula) logic.Literal {
	switch f := f.(type) {
	case Atom:
		return logic.Atom(string(f))
	case Not:
		if a, ok := f.F.(Atom); ok {
			return logic.Atom(string(a)).Negate()
		}
	}
	// Unreachable on well-formed CNF input; surface the problem as a
	// literal that can never resolve instead of panicking.
	return logic.Atom(f.String())
}
