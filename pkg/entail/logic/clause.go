package logic

import (
	"sort"
	"strings"
)

// Clause is a disjunction of literals, held as a deduplicated set.
// Two clauses with the same literal set are equal regardless of the
// order they were built in. The empty clause denotes a contradiction.
type Clause struct {
	lits []Literal // insertion order, no duplicates
}

// NewClause builds a clause from literals, dropping duplicates while
// keeping first-seen order.
func NewClause(lits ...Literal) Clause {
	c := Clause{}
	for _, l := range lits {
		if !c.Contains(l) {
			c.lits = append(c.lits, l)
		}
	}
	return c
}

// ParseClause parses a clause given as literal strings.
func ParseClause(lits []string) (Clause, error) {
	parsed := make([]Literal, 0, len(lits))
	for _, s := range lits {
		l, err := ParseLiteral(s)
		if err != nil {
			return Clause{}, err
		}
		parsed = append(parsed, l)
	}
	return NewClause(parsed...), nil
}

// Literals returns the clause's literals in insertion order. The caller
// must not modify the returned slice.
func (c Clause) Literals() []Literal {
	return c.lits
}

// Len returns the number of distinct literals.
func (c Clause) Len() int {
	return len(c.lits)
}

// IsEmpty reports whether c is the empty clause.
func (c Clause) IsEmpty() bool {
	return len(c.lits) == 0
}

// Contains reports whether the clause holds a structurally equal literal.
func (c Clause) Contains(l Literal) bool {
	for _, have := range c.lits {
		if have.Equal(l) {
			return true
		}
	}
	return false
}

// Key returns a canonical representation independent of literal order,
// usable as a set-membership key.
func (c Clause) Key() string {
	if len(c.lits) == 0 {
		return "□"
	}
	keys := make([]string, len(c.lits))
	for i, l := range c.lits {
		keys[i] = l.String()
	}
	sort.Strings(keys)
	return strings.Join(keys, " ∨ ")
}

// Equal reports structural equality as literal sets.
func (c Clause) Equal(o Clause) bool {
	if len(c.lits) != len(o.lits) {
		return false
	}
	return c.Key() == o.Key()
}

// String renders the clause in insertion order.
func (c Clause) String() string {
	if len(c.lits) == 0 {
		return "□"
	}
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return "{" + strings.Join(parts, " ∨ ") + "}"
}
