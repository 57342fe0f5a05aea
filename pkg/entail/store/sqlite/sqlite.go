package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kbs (
	name TEXT PRIMARY KEY,
	dialect TEXT NOT NULL,
	clauses TEXT NOT NULL,
	formulas TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS proofs (
	id TEXT PRIMARY KEY,
	kb_name TEXT NOT NULL,
	query TEXT NOT NULL,
	verdict TEXT NOT NULL,
	rounds INTEGER NOT NULL,
	derived INTEGER NOT NULL,
	elapsed_us INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_proofs_kb ON proofs(kb_name, created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveKB inserts or replaces a knowledge base, keyed by name.
func (s *sqliteStore) SaveKB(ctx context.Context, kb store.KB) error {
	if kb.Name == "" {
		return fmt.Errorf("knowledge base needs a name: %w", internalerr.ErrInvalidInput)
	}
	clauses, err := json.Marshal(kb.Clauses)
	if err != nil {
		return fmt.Errorf("encode clauses: %w", err)
	}
	formulas, err := json.Marshal(kb.Formulas)
	if err != nil {
		return fmt.Errorf("encode formulas: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kbs (name, dialect, clauses, formulas)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			dialect = excluded.dialect,
			clauses = excluded.clauses,
			formulas = excluded.formulas
	`, kb.Name, kb.Dialect, string(clauses), string(formulas))
	return err
}

// GetKB returns a knowledge base by name.
func (s *sqliteStore) GetKB(ctx context.Context, name string) (store.KB, bool, error) {
	var (
		kb       store.KB
		clauses  string
		formulas string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT name, dialect, clauses, formulas FROM kbs WHERE name = ?", name,
	).Scan(&kb.Name, &kb.Dialect, &clauses, &formulas)
	if errors.Is(err, sql.ErrNoRows) {
		return store.KB{}, false, nil
	}
	if err != nil {
		return store.KB{}, false, err
	}
	if err := json.Unmarshal([]byte(clauses), &kb.Clauses); err != nil {
		return store.KB{}, false, fmt.Errorf("decode clauses: %w", err)
	}
	if err := json.Unmarshal([]byte(formulas), &kb.Formulas); err != nil {
		return store.KB{}, false, fmt.Errorf("decode formulas: %w", err)
	}
	return kb, true, nil
}

// ListKBs returns the stored knowledge base names, sorted.
func (s *sqliteStore) ListKBs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM kbs ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteKB removes a knowledge base and its proofs.
func (s *sqliteStore) DeleteKB(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM proofs WHERE kb_name = ?", name); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM kbs WHERE name = ?", name)
	return err
}

// SaveProof stores a proof record.
func (s *sqliteStore) SaveProof(ctx context.Context, p store.Proof) error {
	if p.ID == "" {
		return fmt.Errorf("proof needs an id: %w", internalerr.ErrInvalidInput)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO proofs (id, kb_name, query, verdict, rounds, derived, elapsed_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, p.ID, p.KBName, p.Query, p.Verdict, p.Rounds, p.Derived,
		p.Elapsed.Microseconds(), p.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// GetProof returns a proof record by id.
func (s *sqliteStore) GetProof(ctx context.Context, id string) (store.Proof, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kb_name, query, verdict, rounds, derived, elapsed_us, created_at
		FROM proofs WHERE id = ?
	`, id)
	p, err := scanProof(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Proof{}, fmt.Errorf("proof %s: %w", id, internalerr.ErrNotFound)
	}
	return p, err
}

// ProofsForKB returns the most recent proofs for a knowledge base.
func (s *sqliteStore) ProofsForKB(ctx context.Context, kbName string, limit int) ([]store.Proof, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kb_name, query, verdict, rounds, derived, elapsed_us, created_at
		FROM proofs WHERE kb_name = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, kbName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Proof
	for rows.Next() {
		p, err := scanProof(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProof(scan func(dest ...interface{}) error) (store.Proof, error) {
	var (
		p         store.Proof
		elapsedUS int64
		createdAt string
	)
	if err := scan(&p.ID, &p.KBName, &p.Query, &p.Verdict, &p.Rounds, &p.Derived, &elapsedUS, &createdAt); err != nil {
		return store.Proof{}, err
	}
	p.Elapsed = time.Duration(elapsedUS) * time.Microsecond
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Proof{}, fmt.Errorf("decode created_at: %w", err)
	}
	p.CreatedAt = ts
	return p, nil
}
