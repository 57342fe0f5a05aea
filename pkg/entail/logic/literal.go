package logic

import "strings"

// Literal is a predicate applied to argument terms, possibly negated.
// A propositional atom is a literal with no arguments. Polarity lives in
// the Negated field, never in the predicate symbol. Immutable.
type Literal struct {
	Predicate string
	Args      []Term
	Negated   bool
}

// Atom builds a positive zero-argument literal.
func Atom(symbol string) Literal {
	return Literal{Predicate: symbol}
}

// Pred builds a positive literal from a predicate symbol and arguments.
func Pred(symbol string, args ...Term) Literal {
	return Literal{Predicate: symbol, Args: args}
}

// Negate returns the literal with opposite polarity.
func (l Literal) Negate() Literal {
	return Literal{Predicate: l.Predicate, Args: l.Args, Negated: !l.Negated}
}

// Equal reports structural equality, including polarity.
func (l Literal) Equal(o Literal) bool {
	if l.Negated != o.Negated || l.Predicate != o.Predicate || len(l.Args) != len(o.Args) {
		return false
	}
	for i := range l.Args {
		if !l.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Complementary reports whether l and o have the same predicate symbol
// and arity but opposite polarity. It says nothing about whether the
// argument terms unify.
func (l Literal) Complementary(o Literal) bool {
	return l.Negated != o.Negated && l.Predicate == o.Predicate && len(l.Args) == len(o.Args)
}

// String renders the literal, prefixing negated literals with ¬.
func (l Literal) String() string {
	var sb strings.Builder
	if l.Negated {
		sb.WriteString("¬")
	}
	sb.WriteString(l.Predicate)
	if len(l.Args) > 0 {
		sb.WriteByte('(')
		for i, a := range l.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte(')')
	}
	return sb.String()
}
