// Package entail is a resolution theorem prover over propositional and
// restricted first-order knowledge bases.
package entail

import (
	"context"
	"fmt"
	"time"

	"github.com/cognicore/entail/pkg/entail/config"
	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/logic"
	"github.com/cognicore/entail/pkg/entail/proof"
	"github.com/cognicore/entail/pkg/entail/prop"
	"github.com/cognicore/entail/pkg/entail/resolution"
	"github.com/cognicore/entail/pkg/entail/store"
)

// Dialect selects the sublanguage of a knowledge base.
type Dialect string

const (
	Propositional Dialect = "propositional"
	FirstOrder    Dialect = "first_order"
)

// ParseDialect validates a dialect string.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case Propositional, FirstOrder:
		return Dialect(s), nil
	}
	return "", fmt.Errorf("dialect %q: %w", s, internalerr.ErrInvalidInput)
}

// Options configures a Prover instance
type Options struct {
	// Store persists knowledge bases and proofs; nil runs stateless.
	Store  store.Store
	Engine config.EngineConfig
}

// Prover is the main theorem proving facade
type Prover struct {
	store   store.Store
	engine  *resolution.Engine
	proofs  *proof.Builder
	dialect Dialect
}

// New creates a Prover instance with the given dependencies
func New(opts Options) *Prover {
	dialect := Dialect(opts.Engine.Dialect)
	if dialect == "" {
		dialect = FirstOrder
	}
	return &Prover{
		store:   opts.Store,
		engine:  resolution.NewEngine(opts.Engine.MaxRounds),
		proofs:  proof.New(),
		dialect: dialect,
	}
}

// Close cleanly shuts down the Prover instance
func (p *Prover) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

// Infer decides whether the knowledge base entails the query. Each
// clause is a list of literal strings (¬ or ~ negation prefix); the
// query is a single literal. An empty dialect falls back to the
// configured default. Each call owns a fresh working clause set, so a
// Prover can serve independent queries back to back.
func (p *Prover) Infer(ctx context.Context, kb [][]string, query string, dialect Dialect) (resolution.Result, error) {
	if dialect == "" {
		dialect = p.dialect
	}
	res, _, err := p.infer(ctx, kb, nil, query, dialect)
	return res, err
}

// InferFormulas decides entailment for a propositional knowledge base
// given as pre-CNF connective expressions such as "(IMPLIES, A, B)".
func (p *Prover) InferFormulas(ctx context.Context, formulas []string, query string) (resolution.Result, error) {
	res, _, err := p.infer(ctx, nil, formulas, query, Propositional)
	return res, err
}

// InferStored loads a stored knowledge base, decides entailment, and
// persists a proof record of the attempt.
func (p *Prover) InferStored(ctx context.Context, kbName, query string) (resolution.Result, store.Proof, error) {
	if p.store == nil {
		return resolution.Unknown, store.Proof{}, fmt.Errorf("no store configured: %w", internalerr.ErrInvalidInput)
	}
	kb, found, err := p.store.GetKB(ctx, kbName)
	if err != nil {
		return resolution.Unknown, store.Proof{}, err
	}
	if !found {
		return resolution.Unknown, store.Proof{}, fmt.Errorf("knowledge base %s: %w", kbName, internalerr.ErrNotFound)
	}
	dialect, err := ParseDialect(kb.Dialect)
	if err != nil {
		return resolution.Unknown, store.Proof{}, err
	}

	start := time.Now()
	res, trace, err := p.infer(ctx, kb.Clauses, kb.Formulas, query, dialect)
	if err != nil {
		return resolution.Unknown, store.Proof{}, err
	}

	rec := p.proofs.Build(kbName, query, res, trace, time.Since(start))
	if err := p.store.SaveProof(ctx, rec); err != nil {
		return res, store.Proof{}, err
	}
	return res, rec, nil
}

// SaveKB stores a knowledge base after checking that every clause and
// formula parses under its dialect.
func (p *Prover) SaveKB(ctx context.Context, kb store.KB) error {
	if p.store == nil {
		return fmt.Errorf("no store configured: %w", internalerr.ErrInvalidInput)
	}
	dialect, err := ParseDialect(kb.Dialect)
	if err != nil {
		return err
	}
	if _, err := buildClauses(kb.Clauses, kb.Formulas, dialect); err != nil {
		return err
	}
	return p.store.SaveKB(ctx, kb)
}

// ImportKBFile loads a YAML knowledge base file and stores it.
func (p *Prover) ImportKBFile(ctx context.Context, path string) (store.KB, error) {
	kbFile, err := config.LoadKB(path)
	if err != nil {
		return store.KB{}, err
	}
	kb := kbFile.StoreKB()
	if err := p.SaveKB(ctx, kb); err != nil {
		return store.KB{}, err
	}
	return kb, nil
}

func (p *Prover) infer(ctx context.Context, clauseStrs [][]string, formulas []string, query string, dialect Dialect) (resolution.Result, resolution.Trace, error) {
	clauses, err := buildClauses(clauseStrs, formulas, dialect)
	if err != nil {
		return resolution.Unknown, resolution.Trace{}, err
	}
	queryLit, err := logic.ParseLiteral(query)
	if err != nil {
		return resolution.Unknown, resolution.Trace{}, fmt.Errorf("query: %w", err)
	}
	if dialect == Propositional {
		if len(queryLit.Args) > 0 {
			return resolution.Unknown, resolution.Trace{}, fmt.Errorf("propositional query %q must be atomic: %w", query, internalerr.ErrInvalidInput)
		}
		// Propositional refutation resolves all pairs from the first
		// round, so a contradictory KB entails everything.
		negated := []logic.Clause{logic.NewClause(queryLit.Negate())}
		return p.engine.ProveAllPairs(ctx, clauses, negated)
	}
	return p.engine.Prove(ctx, clauses, queryLit)
}

// buildClauses parses clause strings and, for propositional input,
// converts pre-CNF formulas into clauses sharing the same
// representation.
func buildClauses(clauseStrs [][]string, formulas []string, dialect Dialect) ([]logic.Clause, error) {
	var clauses []logic.Clause
	for _, lits := range clauseStrs {
		c, err := logic.ParseClause(lits)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	if len(formulas) > 0 && dialect != Propositional {
		return nil, fmt.Errorf("formulas are propositional only: %w", internalerr.ErrInvalidInput)
	}
	for _, s := range formulas {
		f, err := prop.ParseFormula(s)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, prop.Clauses(prop.CNF(f))...)
	}
	return clauses, nil
}
