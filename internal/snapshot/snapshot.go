// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot exports a resolved catalog to SQLite for build-time
// content validation and ad hoc queries. The catalog and index never read
// from it.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/screenref/internal/catalog"
	"github.com/pdiddy/screenref/internal/xref"
	"github.com/pdiddy/screenref/pkg/types"
)

// Store is an open snapshot database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at path and creates the
// schema if it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS entities (
			kind TEXT NOT NULL,
			id TEXT NOT NULL,
			title TEXT,
			position INTEGER NOT NULL,
			PRIMARY KEY (kind, id)
		)`,
		`CREATE TABLE IF NOT EXISTS links (
			from_kind TEXT NOT NULL,
			from_id TEXT NOT NULL,
			relation TEXT NOT NULL,
			to_kind TEXT NOT NULL,
			to_id TEXT NOT NULL,
			ordinal INTEGER NOT NULL,
			derived INTEGER NOT NULL,
			PRIMARY KEY (from_kind, from_id, relation, to_kind, to_id),
			FOREIGN KEY (from_kind, from_id) REFERENCES entities(kind, id),
			FOREIGN KEY (to_kind, to_id) REFERENCES entities(kind, id)
		)`,
		`CREATE TABLE IF NOT EXISTS refs (
			ref_id TEXT PRIMARY KEY,
			authors TEXT,
			title TEXT,
			journal TEXT,
			year INTEGER,
			volume TEXT,
			pages TEXT,
			doi TEXT,
			legal_number TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS citations (
			kind TEXT NOT NULL,
			id TEXT NOT NULL,
			position INTEGER NOT NULL,
			ref_id TEXT NOT NULL,
			page TEXT,
			note TEXT,
			evidence_scheme TEXT,
			evidence_code TEXT,
			PRIMARY KEY (kind, id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS unresolved (
			source_kind TEXT NOT NULL,
			source_id TEXT NOT NULL,
			relation TEXT NOT NULL,
			target_id TEXT NOT NULL,
			reason TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_links_to ON links(to_kind, to_id)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_ref ON citations(ref_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Summary counts the rows written by Write.
type Summary struct {
	Entities   int
	Links      int
	References int
	Citations  int
	Unresolved int
}

// Write replaces the snapshot contents with cat and its index in a single
// transaction.
func (s *Store) Write(ctx context.Context, cat *catalog.Catalog, idx *xref.Index) (Summary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"links", "citations", "unresolved", "entities", "refs", "meta"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return Summary{}, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	var sum Summary

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES ('fingerprint', ?)`, cat.Fingerprint(),
	); err != nil {
		return Summary{}, fmt.Errorf("writing fingerprint: %w", err)
	}

	for _, kind := range types.AllKinds {
		for pos, e := range cat.List(kind) {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO entities (kind, id, title, position) VALUES (?, ?, ?, ?)`,
				string(kind), e.ID, e.Title, pos,
			); err != nil {
				return Summary{}, fmt.Errorf("inserting entity %s: %w", e.Ref(), err)
			}
			sum.Entities++

			for i, c := range e.Citations {
				var scheme, code string
				if c.EvidenceLevel != nil {
					scheme, code = string(c.EvidenceLevel.Scheme), c.EvidenceLevel.Code
				}
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO citations (kind, id, position, ref_id, page, note, evidence_scheme, evidence_code)
					 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
					string(kind), e.ID, i, c.RefID, c.Page, c.Note, scheme, code,
				); err != nil {
					return Summary{}, fmt.Errorf("inserting citation of %s: %w", e.Ref(), err)
				}
				sum.Citations++
			}
		}
	}

	ordinals := make(map[string]int)
	for _, edge := range idx.Edges() {
		key := edge.From.String() + "|" + string(edge.Relation)
		ordinal := ordinals[key]
		ordinals[key]++
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO links (from_kind, from_id, relation, to_kind, to_id, ordinal, derived)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(edge.From.Kind), edge.From.ID, string(edge.Relation),
			string(edge.To.Kind), edge.To.ID, ordinal, edge.Derived,
		); err != nil {
			return Summary{}, fmt.Errorf("inserting link %s %s %s: %w", edge.From, edge.Relation, edge.To, err)
		}
		sum.Links++
	}

	for _, r := range cat.References() {
		authorsJSON, err := json.Marshal(r.Authors)
		if err != nil {
			return Summary{}, fmt.Errorf("encoding authors of %s: %w", r.RefID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO refs (ref_id, authors, title, journal, year, volume, pages, doi, legal_number)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.RefID, string(authorsJSON), r.Title, r.Journal, r.Year,
			r.Volume, r.Pages, r.DOI, r.LegalNumber,
		); err != nil {
			return Summary{}, fmt.Errorf("inserting reference %s: %w", r.RefID, err)
		}
		sum.References++
	}

	for i, u := range idx.Unresolved() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO unresolved (source_kind, source_id, relation, target_id, reason, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			string(u.Source.Kind), u.Source.ID, string(u.Relation), u.MissingTargetID, string(u.Reason), i,
		); err != nil {
			return Summary{}, fmt.Errorf("inserting unresolved link: %w", err)
		}
		sum.Unresolved++
	}

	if err := tx.Commit(); err != nil {
		return Summary{}, fmt.Errorf("committing snapshot: %w", err)
	}
	return sum, nil
}

// Fingerprint returns the content fingerprint of the last write, or "" for
// an empty snapshot.
func (s *Store) Fingerprint(ctx context.Context) (string, error) {
	var fp string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'fingerprint'`).Scan(&fp)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading fingerprint: %w", err)
	}
	return fp, nil
}

// Neighbor is a linked entity as stored in the snapshot.
type Neighbor struct {
	Ref     types.EntityRef `json:"ref" yaml:"ref"`
	Title   string          `json:"title" yaml:"title"`
	Derived bool            `json:"derived" yaml:"derived"`
}

// Neighbors returns the stored neighbors of ref under rel in index order.
func (s *Store) Neighbors(ctx context.Context, ref types.EntityRef, rel types.RelationKind) ([]Neighbor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT l.to_kind, l.to_id, e.title, l.derived
		 FROM links l
		 JOIN entities e ON e.kind = l.to_kind AND e.id = l.to_id
		 WHERE l.from_kind = ? AND l.from_id = ? AND l.relation = ?
		 ORDER BY l.ordinal`,
		string(ref.Kind), ref.ID, string(rel))
	if err != nil {
		return nil, fmt.Errorf("querying neighbors: %w", err)
	}
	defer rows.Close()

	var out []Neighbor
	for rows.Next() {
		var (
			n     Neighbor
			kind  string
			title sql.NullString
		)
		if err := rows.Scan(&kind, &n.Ref.ID, &title, &n.Derived); err != nil {
			return nil, fmt.Errorf("scanning neighbor: %w", err)
		}
		n.Ref.Kind = types.EntityKind(kind)
		n.Title = title.String
		out = append(out, n)
	}
	return out, rows.Err()
}

// Unresolved returns the stored unresolved links in report order.
func (s *Store) Unresolved(ctx context.Context) ([]xref.UnresolvedLink, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source_kind, source_id, relation, target_id, reason
		 FROM unresolved ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying unresolved links: %w", err)
	}
	defer rows.Close()

	var out []xref.UnresolvedLink
	for rows.Next() {
		var (
			u                      xref.UnresolvedLink
			kind, relation, reason string
		)
		if err := rows.Scan(&kind, &u.Source.ID, &relation, &u.MissingTargetID, &reason); err != nil {
			return nil, fmt.Errorf("scanning unresolved link: %w", err)
		}
		u.Source.Kind = types.EntityKind(kind)
		u.Relation = types.RelationKind(relation)
		u.Reason = xref.Reason(reason)
		out = append(out, u)
	}
	return out, rows.Err()
}

// CitingEntities returns the entities whose content cites refID.
func (s *Store) CitingEntities(ctx context.Context, refID string) ([]types.EntityRef, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT c.kind, c.id, e.position FROM citations c
		 JOIN entities e ON e.kind = c.kind AND e.id = c.id
		 WHERE c.ref_id = ?
		 ORDER BY c.kind, e.position`, refID)
	if err != nil {
		return nil, fmt.Errorf("querying citations: %w", err)
	}
	defer rows.Close()

	var out []types.EntityRef
	for rows.Next() {
		var (
			kind, id string
			position int
		)
		if err := rows.Scan(&kind, &id, &position); err != nil {
			return nil, fmt.Errorf("scanning citation: %w", err)
		}
		out = append(out, types.EntityRef{Kind: types.EntityKind(kind), ID: id})
	}
	return out, rows.Err()
}
