package proof

import (
	"testing"
	"time"

	"github.com/cognicore/entail/pkg/entail/resolution"
)

func TestBuild(t *testing.T) {
	b := New()
	trace := resolution.Trace{Rounds: 3, Derived: []string{"¬Greedy(John)", "□"}}

	p := b.Build("royals", "Evil(John)", resolution.True, trace, 42*time.Microsecond)

	if p.ID == "" {
		t.Error("proof id should be minted")
	}
	if p.Verdict != "true" || p.Rounds != 3 || p.Derived != 2 {
		t.Errorf("got %+v", p)
	}
	if p.KBName != "royals" || p.Query != "Evil(John)" {
		t.Errorf("got %+v", p)
	}
	if p.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestBuildIDsAreUnique(t *testing.T) {
	b := New()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := b.Build("kb", "Q", resolution.False, resolution.Trace{}, 0)
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}
