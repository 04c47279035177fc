package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/arff/pkg/arff/catalog"
)

// sqliteStore implements the catalog.Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite catalog database with WAL mode enabled and
// initializes the schema.
func Open(ctx context.Context, path string) (catalog.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
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
CREATE TABLE IF NOT EXISTS datasets (
	id TEXT PRIMARY KEY,
	path TEXT UNIQUE NOT NULL,
	class_name TEXT,
	class_type TEXT,
	num_samples INTEGER DEFAULT 0,
	num_features INTEGER DEFAULT 0,
	num_classes INTEGER DEFAULT 0,
	indexed_at TEXT
);

CREATE TABLE IF NOT EXISTS dataset_labels (
	dataset_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	label TEXT NOT NULL,
	PRIMARY KEY(dataset_id, position),
	FOREIGN KEY(dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS dataset_features (
	dataset_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	PRIMARY KEY(dataset_id, position),
	FOREIGN KEY(dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertEntry inserts or updates an entry, keyed by path. A
// re-indexed path keeps its original ID.
func (s *sqliteStore) UpsertEntry(ctx context.Context, e catalog.Entry) error {
	if e.Path == "" {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRowContext(ctx, "SELECT id FROM datasets WHERE path = ?", e.Path).Scan(&existingID)
	switch {
	case err == sql.ErrNoRows:
		// new entry
	case err != nil:
		return err
	default:
		e.ID = existingID
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO datasets (id, path, class_name, class_type, num_samples, num_features, num_classes, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			class_name = excluded.class_name,
			class_type = excluded.class_type,
			num_samples = excluded.num_samples,
			num_features = excluded.num_features,
			num_classes = excluded.num_classes,
			indexed_at = excluded.indexed_at`,
		e.ID, e.Path, e.ClassName, e.ClassType,
		e.NumSamples, e.NumFeatures, e.NumClasses,
		e.IndexedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM dataset_labels WHERE dataset_id = ?", e.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM dataset_features WHERE dataset_id = ?", e.ID); err != nil {
		return err
	}

	for i, label := range e.ClassLabels {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO dataset_labels (dataset_id, position, label) VALUES (?, ?, ?)",
			e.ID, i, label); err != nil {
			return err
		}
	}
	for i, f := range e.Features {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO dataset_features (dataset_id, position, name, type) VALUES (?, ?, ?, ?)",
			e.ID, i, f.Name, f.Type); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetEntry returns an entry by ID.
func (s *sqliteStore) GetEntry(ctx context.Context, id string) (catalog.Entry, bool, error) {
	return s.getEntry(ctx, "id", id)
}

// GetEntryByPath returns an entry by its source file path.
func (s *sqliteStore) GetEntryByPath(ctx context.Context, path string) (catalog.Entry, bool, error) {
	return s.getEntry(ctx, "path", path)
}

func (s *sqliteStore) getEntry(ctx context.Context, column, key string) (catalog.Entry, bool, error) {
	var e catalog.Entry
	var indexedAt string

	query := `SELECT id, path, class_name, class_type, num_samples, num_features, num_classes, indexed_at
		FROM datasets WHERE ` + column + ` = ?`
	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&e.ID, &e.Path, &e.ClassName, &e.ClassType,
		&e.NumSamples, &e.NumFeatures, &e.NumClasses, &indexedAt)
	if err == sql.ErrNoRows {
		return catalog.Entry{}, false, nil
	}
	if err != nil {
		return catalog.Entry{}, false, err
	}
	if t, perr := time.Parse(time.RFC3339, indexedAt); perr == nil {
		e.IndexedAt = t
	}

	if err := s.loadChildren(ctx, &e); err != nil {
		return catalog.Entry{}, false, err
	}
	return e, true, nil
}

func (s *sqliteStore) loadChildren(ctx context.Context, e *catalog.Entry) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT label FROM dataset_labels WHERE dataset_id = ? ORDER BY position", e.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return err
		}
		e.ClassLabels = append(e.ClassLabels, label)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	frows, err := s.db.QueryContext(ctx,
		"SELECT name, type FROM dataset_features WHERE dataset_id = ? ORDER BY position", e.ID)
	if err != nil {
		return err
	}
	defer frows.Close()
	for frows.Next() {
		var f catalog.Feature
		if err := frows.Scan(&f.Name, &f.Type); err != nil {
			return err
		}
		e.Features = append(e.Features, f)
	}
	return frows.Err()
}

// ListEntries returns up to limit entries sorted by path. A
// non-positive limit returns everything.
func (s *sqliteStore) ListEntries(ctx context.Context, limit int) ([]catalog.Entry, error) {
	query := "SELECT id FROM datasets ORDER BY path"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, 0, len(ids))
	for _, id := range ids {
		e, ok, err := s.GetEntry(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
