package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// scanner is the common subset of sql.Row and sql.Rows used by Scan funcs.
type scanner interface {
	Scan(dest ...any) error
}

// UniqueField names a column with a unique index, so a failed write can be
// reported as a conflict on the right field.
type UniqueField[T any] struct {
	Column string
	Value  func(*T) string
}

// Descriptor maps one record kind onto its SQLite table. Columns[0] must be
// the primary-key column; Args returns values in Columns order.
type Descriptor[T any] struct {
	Table    string
	Columns  []string
	Key      func(*T) string
	Args     func(*T) []any
	Scan     func(scanner) (T, error)
	Unique   []UniqueField[T]
	Validate func(*T) error
}

// Store is a SQLite-backed store for one record kind. All record kinds share
// this one implementation; the Descriptor supplies everything kind-specific.
type Store[T any] struct {
	db   *sql.DB
	desc Descriptor[T]
}

// NewStore creates a store for the given descriptor.
func NewStore[T any](db *sql.DB, desc Descriptor[T]) *Store[T] {
	return &Store[T]{db: db, desc: desc}
}

// List returns every record, in insertion (rowid) order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(s.desc.Columns, ", "), s.desc.Table)
	return s.query(ctx, query)
}

// GetByID returns a single record, or ErrNotFound.
func (s *Store[T]) GetByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		strings.Join(s.desc.Columns, ", "), s.desc.Table, s.keyColumn())
	row := s.db.QueryRowContext(ctx, query, id)
	rec, err := s.desc.Scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning %s: %w", s.desc.Table, err)
	}
	return &rec, nil
}

// Insert validates and persists a new record. A duplicate key or duplicate
// unique field yields ErrConflict; any unexplained driver failure is
// returned unchanged.
func (s *Store[T]) Insert(ctx context.Context, rec *T) error {
	if err := s.desc.Validate(rec); err != nil {
		return err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(s.desc.Columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.desc.Table, strings.Join(s.desc.Columns, ", "), placeholders)

	_, err := s.db.ExecContext(ctx, query, s.desc.Args(rec)...)
	if err != nil {
		if isUniqueViolation(err) {
			if conflictErr := s.classifyConflict(ctx, rec, true); conflictErr != nil {
				return conflictErr
			}
		}
		return fmt.Errorf("inserting into %s: %w", s.desc.Table, err)
	}
	return nil
}

// Replace fully overwrites the record stored under id. The caller must have
// already checked that the record's own key matches id. A zero-row update
// means the record is absent (ErrNotFound) — SQLite's single-writer model
// leaves no other explanation, so no outcome is masked.
func (s *Store[T]) Replace(ctx context.Context, id string, rec *T) error {
	if err := s.desc.Validate(rec); err != nil {
		return err
	}

	setCols := make([]string, 0, len(s.desc.Columns)-1)
	for _, col := range s.desc.Columns[1:] {
		setCols = append(setCols, col+" = ?")
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		s.desc.Table, strings.Join(setCols, ", "), s.keyColumn())

	args := append(s.desc.Args(rec)[1:], id)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			if conflictErr := s.classifyConflict(ctx, rec, false); conflictErr != nil {
				return conflictErr
			}
		}
		return fmt.Errorf("updating %s %s: %w", s.desc.Table, id, err)
	}
	n, _ := result.RowsAffected() //nolint:errcheck // SQLite always supports RowsAffected
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record by ID, or returns ErrNotFound.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", s.desc.Table, s.keyColumn())
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", s.desc.Table, id, err)
	}
	n, _ := result.RowsAffected() //nolint:errcheck // SQLite always supports RowsAffected
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// FindBy returns every record whose column equals value — the foreign-key
// filter used by the junction kinds. No match is an empty slice, not an
// error.
func (s *Store[T]) FindBy(ctx context.Context, column, value string) ([]T, error) {
	if !s.hasColumn(column) {
		return nil, fmt.Errorf("unknown column %s on %s", column, s.desc.Table)
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		strings.Join(s.desc.Columns, ", "), s.desc.Table, column)
	return s.query(ctx, query, value)
}

// IDTaken reports whether a record with the given key already exists.
func (s *Store[T]) IDTaken(ctx context.Context, id string) (bool, error) {
	return s.columnTaken(ctx, s.keyColumn(), id)
}

// classifyConflict checks, after a unique-violation error, which field the
// candidate record collides on. The schema's unique index already rejected
// the write; this only produces the friendly classification. Returns nil if
// nothing explains the violation, so the caller propagates the raw error.
func (s *Store[T]) classifyConflict(ctx context.Context, rec *T, includeKey bool) error {
	if includeKey {
		taken, err := s.IDTaken(ctx, s.desc.Key(rec))
		if err == nil && taken {
			return fmt.Errorf("%w: %s %q is already in use",
				ErrConflict, s.keyColumn(), s.desc.Key(rec))
		}
	}
	for _, u := range s.desc.Unique {
		taken, err := s.columnTaken(ctx, u.Column, u.Value(rec))
		if err == nil && taken {
			return fmt.Errorf("%w: %s %q is already in use", ErrConflict, u.Column, u.Value(rec))
		}
	}
	return nil
}

func (s *Store[T]) columnTaken(ctx context.Context, column, value string) (bool, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", s.desc.Table, column)
	var count int
	if err := s.db.QueryRowContext(ctx, query, value).Scan(&count); err != nil {
		return false, fmt.Errorf("checking %s.%s: %w", s.desc.Table, column, err)
	}
	return count > 0, nil
}

func (s *Store[T]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.desc.Table, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		rec, err := s.desc.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", s.desc.Table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", s.desc.Table, err)
	}
	return records, nil
}

func (s *Store[T]) keyColumn() string {
	return s.desc.Columns[0]
}

func (s *Store[T]) hasColumn(column string) bool {
	for _, c := range s.desc.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Nullable-column helpers shared by the descriptors.

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

func parseNullTime(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
