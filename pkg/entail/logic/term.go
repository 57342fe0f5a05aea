package logic

import (
	"strings"
	"unicode"
)

// Term is a first-order term: a constant, a variable, or a compound term
// (a functor applied to argument terms). Variables follow the usual
// convention: an all-letter symbol starting with a lowercase letter.
// Terms are never mutated after construction.
type Term struct {
	Symbol string
	Args   []Term // non-empty only for compound terms
}

// Const builds a constant term.
func Const(symbol string) Term {
	return Term{Symbol: symbol}
}

// Var builds a variable term. The symbol should follow the variable
// naming convention (lowercase-leading, alphabetic).
func Var(symbol string) Term {
	return Term{Symbol: symbol}
}

// Compound builds a compound term from a functor and its arguments.
func Compound(functor string, args ...Term) Term {
	return Term{Symbol: functor, Args: args}
}

// IsCompound reports whether t is a compound term.
func (t Term) IsCompound() bool {
	return len(t.Args) > 0
}

// IsVariable reports whether t is a variable.
func (t Term) IsVariable() bool {
	return len(t.Args) == 0 && isVariableSymbol(t.Symbol)
}

// Equal reports structural equality.
func (t Term) Equal(o Term) bool {
	if t.Symbol != o.Symbol || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// String renders the term in the usual functor(arg, ...) notation.
func (t Term) String() string {
	if len(t.Args) == 0 {
		return t.Symbol
	}
	var sb strings.Builder
	sb.WriteString(t.Symbol)
	sb.WriteByte('(')
	for i, a := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func isVariableSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLower(r) {
			return false
		}
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
