// Package proof turns engine results into persistable proof records.
package proof

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/entail/pkg/entail/resolution"
	"github.com/cognicore/entail/pkg/entail/store"
)

// Builder mints proof records with monotonic ULID ids.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new proof builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Build creates a proof record from one refutation attempt.
func (b *Builder) Build(kbName, query string, res resolution.Result, trace resolution.Trace, elapsed time.Duration) store.Proof {
	return store.Proof{
		ID:        ulid.MustNew(ulid.Now(), b.entropy).String(),
		KBName:    kbName,
		Query:     query,
		Verdict:   res.String(),
		Rounds:    trace.Rounds,
		Derived:   len(trace.Derived),
		Elapsed:   elapsed,
		CreatedAt: time.Now().UTC(),
	}
}
