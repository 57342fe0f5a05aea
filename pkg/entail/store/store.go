// Package store defines persistence for knowledge bases and proof
// records.
package store

import (
	"context"
	"time"
)

// Store persists named knowledge bases and the proofs run against them.
type Store interface {
	Close() error

	// Knowledge bases
	SaveKB(ctx context.Context, kb KB) error
	GetKB(ctx context.Context, name string) (KB, bool, error)
	ListKBs(ctx context.Context) ([]string, error)
	DeleteKB(ctx context.Context, name string) error

	// Proof records
	SaveProof(ctx context.Context, p Proof) error
	GetProof(ctx context.Context, id string) (Proof, error)
	ProofsForKB(ctx context.Context, kbName string, limit int) ([]Proof, error)
}

// KB is a stored knowledge base: clauses as lists of literal strings
// (¬ or ~ negation prefix), plus optional pre-CNF propositional
// formulas in connective-expression form.
type KB struct {
	Name     string
	Dialect  string // "propositional" or "first_order"
	Clauses  [][]string
	Formulas []string
}

// Proof records the outcome of one refutation attempt.
type Proof struct {
	ID        string
	KBName    string
	Query     string
	Verdict   string // "true", "false" or "unknown"
	Rounds    int
	Derived   int // clauses derived during the attempt
	Elapsed   time.Duration
	CreatedAt time.Time
}
