// Package pg provides a Postgres-backed authority definition store.
package pg

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/spatialkit/referencing-framework/authority"
)

const schema = `
CREATE TABLE IF NOT EXISTS authority_definitions (
	authority TEXT NOT NULL,
	code TEXT NOT NULL,
	kind TEXT NOT NULL,
	name TEXT NOT NULL,
	wkt TEXT,
	remarks TEXT
);`

// Store is a database-backed implementation of the authority.Store and
// authority.MutableStore interfaces. Key uniqueness is enforced by the store
// operations rather than a database constraint, so it also works against
// engines without conflict clauses.
type Store struct {
	db *sql.DB
}

var _ authority.Store = (*Store)(nil)
var _ authority.MutableStore = (*Store)(nil)

// Open connects to a Postgres database with the given DSN and ensures the
// schema exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return New(db)
}

// New wraps an existing database handle, ensuring the schema exists. The
// caller keeps ownership of the handle.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the definition with the given key, or
// authority.ErrDefinitionNotFound.
func (s *Store) Get(key authority.DefinitionKey) (authority.Definition, error) {
	row := s.db.QueryRow(
		`SELECT kind, name, wkt, remarks FROM authority_definitions WHERE authority = $1 AND code = $2`,
		key.Authority(), key.Code(),
	)

	def := authority.Definition{Authority: key.Authority(), Code: key.Code()}
	var wkt, remarks sql.NullString
	if err := row.Scan(&def.Kind, &def.Name, &wkt, &remarks); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return authority.Definition{}, authority.ErrDefinitionNotFound
		}

		return authority.Definition{}, fmt.Errorf("query definition: %w", err)
	}
	def.WKT = wkt.String
	def.Remarks = remarks.String

	return def, nil
}

// Fetch returns all definitions ordered by authority and code.
func (s *Store) Fetch() ([]authority.Definition, error) {
	rows, err := s.db.Query(
		`SELECT authority, code, kind, name, wkt, remarks FROM authority_definitions ORDER BY authority, code`,
	)
	if err != nil {
		return nil, fmt.Errorf("query definitions: %w", err)
	}
	defer rows.Close()

	var defs []authority.Definition
	for rows.Next() {
		var def authority.Definition
		var wkt, remarks sql.NullString
		if err := rows.Scan(&def.Authority, &def.Code, &def.Kind, &def.Name, &wkt, &remarks); err != nil {
			return nil, fmt.Errorf("scan definition: %w", err)
		}
		def.WKT = wkt.String
		def.Remarks = remarks.String
		defs = append(defs, def)
	}

	return defs, rows.Err()
}

// Filter returns all definitions that pass the provided filters, applied in
// order.
func (s *Store) Filter(filters ...authority.FilterFunc) []authority.Definition {
	defs, err := s.Fetch()
	if err != nil {
		return nil
	}
	for _, filter := range filters {
		defs = filter(defs)
	}

	return defs
}

// Add inserts a new definition, failing with authority.ErrDefinitionExists
// when a definition with the same key is already present.
func (s *Store) Add(def authority.Definition) error {
	exists, err := s.exists(def.Key())
	if err != nil {
		return err
	}
	if exists {
		return authority.ErrDefinitionExists
	}

	return s.insert(def)
}

// Upsert inserts or replaces the definition with the same key.
func (s *Store) Upsert(def authority.Definition) error {
	exists, err := s.exists(def.Key())
	if err != nil {
		return err
	}
	if !exists {
		return s.insert(def)
	}

	_, err = s.db.Exec(
		`UPDATE authority_definitions SET kind = $1, name = $2, wkt = $3, remarks = $4 WHERE authority = $5 AND code = $6`,
		def.Kind, def.Name, def.WKT, def.Remarks, def.Authority, def.Code,
	)
	if err != nil {
		return fmt.Errorf("update definition: %w", err)
	}

	return nil
}

// Delete removes the definition with the given key, failing with
// authority.ErrDefinitionNotFound when there is none.
func (s *Store) Delete(key authority.DefinitionKey) error {
	exists, err := s.exists(key)
	if err != nil {
		return err
	}
	if !exists {
		return authority.ErrDefinitionNotFound
	}

	_, err = s.db.Exec(
		`DELETE FROM authority_definitions WHERE authority = $1 AND code = $2`,
		key.Authority(), key.Code(),
	)
	if err != nil {
		return fmt.Errorf("delete definition: %w", err)
	}

	return nil
}

func (s *Store) exists(key authority.DefinitionKey) (bool, error) {
	row := s.db.QueryRow(
		`SELECT code FROM authority_definitions WHERE authority = $1 AND code = $2`,
		key.Authority(), key.Code(),
	)

	var code string
	if err := row.Scan(&code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("query definition: %w", err)
	}

	return true, nil
}

func (s *Store) insert(def authority.Definition) error {
	_, err := s.db.Exec(
		`INSERT INTO authority_definitions (authority, code, kind, name, wkt, remarks) VALUES ($1, $2, $3, $4, $5, $6)`,
		def.Authority, def.Code, def.Kind, def.Name, def.WKT, def.Remarks,
	)
	if err != nil {
		return fmt.Errorf("insert definition: %w", err)
	}

	return nil
}
