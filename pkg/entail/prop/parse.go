package prop

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cognicore/entail/pkg/entail/logic"
)

// ParseFormula parses the nested connective expression format used by
// knowledge base files:
//
//	(IMPLIES, A, B)
//	(IFF, B11, (OR, P12, P21))
//	(NOT, P11)
//	A
//
// Operators are NOT (unary), IMPLIES and IFF (binary), and AND and OR
// (two or more operands; OR folds right into binary nodes). A bare
// symbol parses as an atom.
func ParseFormula(s string) (Formula, error) {
	p := &fparser{input: s, rest: strings.TrimSpace(s)}
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.rest != "" {
		return nil, p.errorf("unexpected trailing input %q", p.rest)
	}
	return f, nil
}

type fparser struct {
	input string
	rest  string
}

func (p *fparser) pos() int {
	return len(p.input) - len(p.rest)
}

func (p *fparser) errorf(format string, args ...interface{}) error {
	return &logic.ParseError{Input: p.input, Pos: p.pos(), Msg: fmt.Sprintf(format, args...)}
}

func (p *fparser) skipSpace() {
	p.rest = strings.TrimLeft(p.rest, " \t\n")
}

func (p *fparser) consume(prefix string) bool {
	if strings.HasPrefix(p.rest, prefix) {
		p.rest = p.rest[len(prefix):]
		return true
	}
	return false
}

func (p *fparser) symbol() (string, error) {
	i := 0
	for _, r := range p.rest {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		i += len(string(r))
	}
	if i == 0 {
		return "", p.errorf("expected a symbol")
	}
	sym := p.rest[:i]
	p.rest = p.rest[i:]
	return sym, nil
}

func (p *fparser) formula() (Formula, error) {
	p.skipSpace()
	if !p.consume("(") {
		sym, err := p.symbol()
		if err != nil {
			return nil, err
		}
		return Atom(sym), nil
	}

	p.skipSpace()
	op, err := p.symbol()
	if err != nil {
		return nil, err
	}

	var operands []Formula
	for {
		p.skipSpace()
		if p.consume(")") {
			break
		}
		if !p.consume(",") {
			return nil, p.errorf("expected ',' or ')'")
		}
		operand, err := p.formula()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}

	return buildConnective(op, operands, p)
}

func buildConnective(op string, operands []Formula, p *fparser) (Formula, error) {
	switch op {
	case "NOT":
		if len(operands) != 1 {
			return nil, p.errorf("NOT takes 1 operand, got %d", len(operands))
		}
		return Not{operands[0]}, nil
	case "IMPLIES":
		if len(operands) != 2 {
			return nil, p.errorf("IMPLIES takes 2 operands, got %d", len(operands))
		}
		return Implies{operands[0], operands[1]}, nil
	case "IFF":
		if len(operands) != 2 {
			return nil, p.errorf("IFF takes 2 operands, got %d", len(operands))
		}
		return Iff{operands[0], operands[1]}, nil
	case "AND":
		if len(operands) < 2 {
			return nil, p.errorf("AND takes at least 2 operands, got %d", len(operands))
		}
		return And{Subs: operands}, nil
	case "OR":
		if len(operands) < 2 {
			return nil, p.errorf("OR takes at least 2 operands, got %d", len(operands))
		}
		out := operands[len(operands)-1]
		for i := len(operands) - 2; i >= 0; i-- {
			out = Or{operands[i], out}
		}
		return out, nil
	default:
		return nil, p.errorf("unknown operator %q", op)
	}
}
