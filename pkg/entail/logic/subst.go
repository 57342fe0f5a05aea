package logic

// Substitution maps variable symbols to terms. A substitution is created
// by one Unify call and applied immediately; it is never reused or
// composed across independent unification attempts.
type Substitution map[string]Term

// Lookup resolves t through the substitution. Chained bindings
// (x→y, y→John) are followed to a fixed term so application is
// idempotent. Non-variables and unbound variables come back unchanged.
func (s Substitution) Lookup(t Term) Term {
	seen := make(map[string]bool)
	for t.IsVariable() && !seen[t.Symbol] {
		bound, ok := s[t.Symbol]
		if !ok {
			return t
		}
		seen[t.Symbol] = true
		t = bound
	}
	return t
}

// Apply rewrites a term under the substitution, descending into
// compound arguments. The input is not modified.
func Apply(s Substitution, t Term) Term {
	t = s.Lookup(t)
	if !t.IsCompound() {
		return t
	}
	args := make([]Term, len(t.Args))
	for i, a := range t.Args {
		args[i] = Apply(s, a)
	}
	return Term{Symbol: t.Symbol, Args: args}
}

// ApplyLiteral rebuilds a literal with every argument substituted,
// preserving predicate symbol and polarity.
func ApplyLiteral(s Substitution, l Literal) Literal {
	if len(l.Args) == 0 {
		return l
	}
	args := make([]Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = Apply(s, a)
	}
	return Literal{Predicate: l.Predicate, Args: args, Negated: l.Negated}
}

// ApplyClause rebuilds a clause with the substitution applied to every
// literal. Literals collapsed to duplicates by the substitution are
// deduplicated.
func ApplyClause(s Substitution, c Clause) Clause {
	lits := make([]Literal, 0, c.Len())
	for _, l := range c.Literals() {
		lits = append(lits, ApplyLiteral(s, l))
	}
	return NewClause(lits...)
}
