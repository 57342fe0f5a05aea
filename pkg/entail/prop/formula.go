// Package prop models propositional formulas over the connectives
// NOT, AND, OR, IMPLIES and IFF, and rewrites them into conjunctive
// normal form so the resolution engine can consume them as clauses.
package prop

import "strings"

// Formula is a propositional formula tree. The variant set is closed:
// Atom, Not, And, Or, Implies, Iff, plus the True/False constants.
type Formula interface {
	// Eval evaluates the formula under a truth assignment. Atoms
	// missing from the model evaluate to false.
	Eval(model map[string]bool) bool
	String() string
}

// True and False are the constant formulas. They arise from degenerate
// inputs such as the empty conjunction and its negation.
var (
	True  Formula = trueConst{}
	False Formula = falseConst{}
)

type trueConst struct{}

func (trueConst) Eval(map[string]bool) bool { return true }
func (trueConst) String() string            { return "⊤" }

type falseConst struct{}

func (falseConst) Eval(map[string]bool) bool { return false }
func (falseConst) String() string            { return "⊥" }

// Atom is a propositional symbol.
type Atom string

func (a Atom) Eval(model map[string]bool) bool { return model[string(a)] }
func (a Atom) String() string                  { return string(a) }

// Not negates a subformula.
type Not struct{ F Formula }

func (n Not) Eval(model map[string]bool) bool { return !n.F.Eval(model) }
func (n Not) String() string                  { return "¬" + n.F.String() }

// And is an n-ary conjunction.
type And struct{ Subs []Formula }

// Conj builds a conjunction of subformulas.
func Conj(subs ...Formula) And { return And{Subs: subs} }

func (a And) Eval(model map[string]bool) bool {
	for _, sub := range a.Subs {
		if !sub.Eval(model) {
			return false
		}
	}
	return true
}

func (a And) String() string {
	parts := make([]string, len(a.Subs))
	for i, sub := range a.Subs {
		parts[i] = sub.String()
	}
	return "(" + strings.Join(parts, " ∧ ") + ")"
}

// Or is a binary disjunction. N-ary input is folded into nested
// binary nodes by the parser; clause extraction flattens them back.
type Or struct{ A, B Formula }

func (o Or) Eval(model map[string]bool) bool { return o.A.Eval(model) || o.B.Eval(model) }
func (o Or) String() string                  { return "(" + o.A.String() + " ∨ " + o.B.String() + ")" }

// Implies is material implication.
type Implies struct{ A, B Formula }

func (i Implies) Eval(model map[string]bool) bool { return !i.A.Eval(model) || i.B.Eval(model) }
func (i Implies) String() string                  { return "(" + i.A.String() + " → " + i.B.String() + ")" }

// Iff is the biconditional.
type Iff struct{ A, B Formula }

func (f Iff) Eval(model map[string]bool) bool { return f.A.Eval(model) == f.B.Eval(model) }
func (f Iff) String() string                  { return "(" + f.A.String() + " ↔ " + f.B.String() + ")" }
