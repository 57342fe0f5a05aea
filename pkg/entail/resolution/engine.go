package resolution

import (
	"context"

	"github.com/cognicore/entail/pkg/entail/logic"
)

// Result is the outcome of a refutation attempt.
type Result int

const (
	// False means saturation was reached without deriving the empty
	// clause: the query is not entailed.
	False Result = iota
	// True means the empty clause was derived: the query is entailed.
	True
	// Unknown means the round cap was hit before either terminal
	// state was reached.
	Unknown
)

func (r Result) String() string {
	switch r {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// DefaultMaxRounds bounds the saturation loop. Naive all-pairs
// resolution can grow without bound on some knowledge bases, so the
// loop never runs uncapped.
const DefaultMaxRounds = 100

// Trace records what a refutation attempt did, in derivation order,
// for reproducible diagnostics and proof records.
type Trace struct {
	Rounds  int
	Derived []string // clause keys, in the order they were added
}

// Engine runs resolution refutation over a clause set. Each Prove call
// owns its own working clause set; an Engine is safe for reuse across
// independent queries.
type Engine struct {
	maxRounds int
}

// NewEngine creates an engine with the given round cap; zero or
// negative means DefaultMaxRounds.
func NewEngine(maxRounds int) *Engine {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Engine{maxRounds: maxRounds}
}

// Prove decides whether the knowledge base entails the query. It seeds
// the working set with the KB clauses plus the negated query, starts
// the frontier at the negated-query clauses, then resolves every pair
// involving a newly derived clause until the empty clause appears
// (True), no new clause can be derived (False), or the round cap is
// hit (Unknown). The only error condition is context cancellation.
func (e *Engine) Prove(ctx context.Context, kb []logic.Clause, query logic.Literal) (Result, Trace, error) {
	return e.ProveClauses(ctx, kb, []logic.Clause{logic.NewClause(query.Negate())})
}

// ProveClauses is Prove with the negated query already in clause form,
// for callers whose query negation expands to several clauses.
func (e *Engine) ProveClauses(ctx context.Context, kb, negatedQuery []logic.Clause) (Result, Trace, error) {
	return e.prove(ctx, kb, negatedQuery, false)
}

// ProveAllPairs seeds the first round's frontier with the entire
// clause set rather than just the negated query, so a contradiction
// already present in the knowledge base also surfaces as the empty
// clause. The propositional pipeline resolves all pairs this way.
func (e *Engine) ProveAllPairs(ctx context.Context, kb, negatedQuery []logic.Clause) (Result, Trace, error) {
	return e.prove(ctx, kb, negatedQuery, true)
}

func (e *Engine) prove(ctx context.Context, kb, negatedQuery []logic.Clause, allPairs bool) (Result, Trace, error) {
	var trace Trace

	// Working set: insertion order for deterministic traces, keyed map
	// for structural deduplication.
	var clauses []logic.Clause
	seen := make(map[string]struct{})
	add := func(c logic.Clause) bool {
		key := c.Key()
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		clauses = append(clauses, c)
		return true
	}

	for _, c := range kb {
		add(c)
	}
	frontier := make([]logic.Clause, 0, len(negatedQuery))
	for _, c := range negatedQuery {
		if c.IsEmpty() {
			return True, trace, nil
		}
		add(c)
		frontier = append(frontier, c)
	}
	if allPairs {
		frontier = append([]logic.Clause(nil), clauses...)
	}

	for round := 1; round <= e.maxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return Unknown, trace, err
		}
		trace.Rounds = round

		var next []logic.Clause
		nextSeen := make(map[string]struct{})
		for _, ci := range frontier {
			for _, cj := range clauses {
				if ci.Equal(cj) {
					continue
				}
				for _, r := range Resolve(ci, cj) {
					if r.IsEmpty() {
						trace.Derived = append(trace.Derived, r.Key())
						return True, trace, nil
					}
					key := r.Key()
					if _, dup := seen[key]; dup {
						continue
					}
					if _, dup := nextSeen[key]; dup {
						continue
					}
					nextSeen[key] = struct{}{}
					next = append(next, r)
				}
			}
		}

		if len(next) == 0 {
			return False, trace, nil
		}
		for _, c := range next {
			add(c)
			trace.Derived = append(trace.Derived, c.Key())
		}
		frontier = next
	}

	return Unknown, trace, nil
}
