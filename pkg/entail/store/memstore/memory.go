package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/store"
)

// Store is an in-memory implementation of store.Store for tests and
// ephemeral provers.
type Store struct {
	mu     sync.RWMutex
	kbs    map[string]store.KB
	proofs map[string]store.Proof
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		kbs:    make(map[string]store.KB),
		proofs: make(map[string]store.Proof),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveKB inserts or replaces a knowledge base, keyed by name.
func (s *Store) SaveKB(ctx context.Context, kb store.KB) error {
	if kb.Name == "" {
		return fmt.Errorf("knowledge base needs a name: %w", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kbs[kb.Name] = copyKB(kb)
	return nil
}

// GetKB returns a knowledge base by name.
func (s *Store) GetKB(ctx context.Context, name string) (store.KB, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if kb, ok := s.kbs[name]; ok {
		return copyKB(kb), true, nil
	}
	return store.KB{}, false, nil
}

// ListKBs returns the stored knowledge base names, sorted.
func (s *Store) ListKBs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.kbs))
	for name := range s.kbs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DeleteKB removes a knowledge base and its proofs.
func (s *Store) DeleteKB(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.kbs, name)
	for id, p := range s.proofs {
		if p.KBName == name {
			delete(s.proofs, id)
		}
	}
	return nil
}

// SaveProof stores a proof record.
func (s *Store) SaveProof(ctx context.Context, p store.Proof) error {
	if p.ID == "" {
		return fmt.Errorf("proof needs an id: %w", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proofs[p.ID] = p
	return nil
}

// GetProof returns a proof record by id.
func (s *Store) GetProof(ctx context.Context, id string) (store.Proof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.proofs[id]; ok {
		return p, nil
	}
	return store.Proof{}, fmt.Errorf("proof %s: %w", id, internalerr.ErrNotFound)
}

// ProofsForKB returns the most recent proofs for a knowledge base.
func (s *Store) ProofsForKB(ctx context.Context, kbName string, limit int) ([]store.Proof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = 20
	}
	var out []store.Proof
	for _, p := range s.proofs {
		if p.KBName == kbName {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func copyKB(kb store.KB) store.KB {
	out := kb
	out.Clauses = make([][]string, len(kb.Clauses))
	for i, clause := range kb.Clauses {
		out.Clauses[i] = append([]string(nil), clause...)
	}
	out.Formulas = append([]string(nil), kb.Formulas...)
	return out
}
