package logic

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseError reports malformed literal or term text.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at offset %d: %s", e.Input, e.Pos, e.Msg)
}

// ParseLiteral parses a literal string such as "Loves(father(John), John)",
// "¬King(x)" or a bare propositional atom "B11". Both ¬ and ~ are accepted
// as negation markers. Arguments may be nested compound terms; commas
// inside nested parentheses do not split top-level arguments.
func ParseLiteral(s string) (Literal, error) {
	p := &parser{input: s, rest: strings.TrimSpace(s)}
	p.skipSpace()

	negated := false
	if p.consume("¬") || p.consume("~") {
		negated = true
		p.skipSpace()
	}

	symbol, err := p.symbol()
	if err != nil {
		return Literal{}, err
	}

	lit := Literal{Predicate: symbol, Negated: negated}
	if p.consume("(") {
		args, err := p.args()
		if err != nil {
			return Literal{}, err
		}
		if !p.consume(")") {
			return Literal{}, p.errorf("expected ')'")
		}
		lit.Args = args
	}

	p.skipSpace()
	if p.rest != "" {
		return Literal{}, p.errorf("unexpected trailing input %q", p.rest)
	}
	return lit, nil
}

// ParseTerm parses a single term: a constant, a variable, or a compound
// term with nested arguments.
func ParseTerm(s string) (Term, error) {
	p := &parser{input: s, rest: strings.TrimSpace(s)}
	p.skipSpace()
	t, err := p.term()
	if err != nil {
		return Term{}, err
	}
	p.skipSpace()
	if p.rest != "" {
		return Term{}, p.errorf("unexpected trailing input %q", p.rest)
	}
	return t, nil
}

// parser is a minimal recursive-descent parser over a literal string.
type parser struct {
	input string
	rest  string
}

func (p *parser) pos() int {
	return len(p.input) - len(p.rest)
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Input: p.input, Pos: p.pos(), Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	p.rest = strings.TrimLeft(p.rest, " \t")
}

func (p *parser) consume(prefix string) bool {
	if strings.HasPrefix(p.rest, prefix) {
		p.rest = p.rest[len(prefix):]
		return true
	}
	return false
}

// symbol reads a predicate, functor, constant or variable name.
func (p *parser) symbol() (string, error) {
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

func (p *parser) term() (Term, error) {
	symbol, err := p.symbol()
	if err != nil {
		return Term{}, err
	}
	if !p.consume("(") {
		return Term{Symbol: symbol}, nil
	}
	args, err := p.args()
	if err != nil {
		return Term{}, err
	}
	if !p.consume(")") {
		return Term{}, p.errorf("expected ')'")
	}
	return Term{Symbol: symbol, Args: args}, nil
}

// args parses a comma-separated argument list up to (but not including)
// the closing parenthesis.
func (p *parser) args() ([]Term, error) {
	var args []Term
	for {
		p.skipSpace()
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		p.skipSpace()
		if !p.consume(",") {
			return args, nil
		}
	}
}
