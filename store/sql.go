package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/example/gridview/domain/model"
)

// ErrRowNotFound indicates an update or delete against an unknown row id
var ErrRowNotFound = errors.New("store: row not found")

// timestampLayout is the storage form of timestamp fields. SQLite has
// no native datetime type; ISO8601 text sorts correctly.
const timestampLayout = time.RFC3339

// SQLStore persists rows in a database/sql database, one table per
// schema. Numbers are stored as REAL, timestamps as ISO8601 TEXT,
// everything else as TEXT.
type SQLStore struct {
	db     *sql.DB
	schema Schema
}

// New wraps an existing database handle. The caller owns the handle's
// lifecycle.
func New(db *sql.DB, schema Schema) *SQLStore {
	return &SQLStore{db: db, schema: schema}
}

// OpenSQLite opens (or creates) a SQLite database at path and ensures
// the schema's table exists.
func OpenSQLite(ctx context.Context, path string, schema Schema) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	s := New(db, schema)
	if err := s.ensureTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) ensureTable(ctx context.Context) error {
	cols := make([]string, 0, len(s.schema.Fields)+1)
	cols = append(cols, "id TEXT PRIMARY KEY")
	for _, f := range s.schema.Fields {
		typ := "TEXT"
		if f.Type == model.FieldTypeNumber {
			typ = "REAL"
		}
		cols = append(cols, fmt.Sprintf("%s %s", f.Name, typ))
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", s.schema.Table, strings.Join(cols, ", "))
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("store: create table %s: %w", s.schema.Table, err)
	}
	return nil
}

// ListRows fetches the complete row set in insertion order.
func (s *SQLStore) ListRows(ctx context.Context) ([]model.Row, error) {
	names := make([]string, 0, len(s.schema.Fields)+1)
	names = append(names, "id")
	for _, f := range s.schema.Fields {
		names = append(names, f.Name)
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", strings.Join(names, ", "), s.schema.Table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: list rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Row
	for rows.Next() {
		var id string
		texts := make([]sql.NullString, len(s.schema.Fields))
		nums := make([]sql.NullFloat64, len(s.schema.Fields))

		dest := make([]any, 0, len(s.schema.Fields)+1)
		dest = append(dest, &id)
		for i, f := range s.schema.Fields {
			if f.Type == model.FieldTypeNumber {
				dest = append(dest, &nums[i])
			} else {
				dest = append(dest, &texts[i])
			}
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("store: scan row: %w", err)
		}

		fields := make(map[string]model.Value, len(s.schema.Fields))
		for i, f := range s.schema.Fields {
			fields[f.Name] = decodeField(f.Type, texts[i], nums[i])
		}
		out = append(out, model.NewRow(id, fields))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list rows: %w", err)
	}
	return out, nil
}

func decodeField(ft model.FieldType, text sql.NullString, num sql.NullFloat64) model.Value {
	switch ft {
	case model.FieldTypeNumber:
		return model.Number(num.Float64)
	case model.FieldTypeTimestamp:
		if !text.Valid || text.String == "" {
			return model.Timestamp(time.Time{})
		}
		t, err := time.Parse(timestampLayout, text.String)
		if err != nil {
			return model.Timestamp(time.Time{})
		}
		return model.Timestamp(t)
	default:
		return model.Text(text.String)
	}
}

func encodeField(ft model.FieldType, v model.Value) any {
	switch ft {
	case model.FieldTypeNumber:
		return v.Float()
	case model.FieldTypeTimestamp:
		if v.Time().IsZero() {
			return ""
		}
		return v.Time().Format(timestampLayout)
	default:
		return v.Render()
	}
}

// CreateRow inserts a new row with a generated identifier.
func (s *SQLStore) CreateRow(ctx context.Context, fields map[string]model.Value) (model.Row, error) {
	id := uuid.NewString()

	names := []string{"id"}
	marks := []string{"?"}
	args := []any{id}
	stored := make(map[string]model.Value, len(s.schema.Fields))
	for _, f := range s.schema.Fields {
		v := fields[f.Name]
		names = append(names, f.Name)
		marks = append(marks, "?")
		args = append(args, encodeField(f.Type, v))
		stored[f.Name] = v
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.schema.Table, strings.Join(names, ", "), strings.Join(marks, ", "))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return model.Row{}, fmt.Errorf("store: create row: %w", err)
	}
	return model.NewRow(id, stored), nil
}

// UpdateRow overwrites the given fields of an existing row.
func (s *SQLStore) UpdateRow(ctx context.Context, id string, fields map[string]model.Value) error {
	var sets []string
	var args []any
	for _, f := range s.schema.Fields {
		v, ok := fields[f.Name]
		if !ok {
			continue
		}
		sets = append(sets, f.Name+" = ?")
		args = append(args, encodeField(f.Type, v))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", s.schema.Table, strings.Join(sets, ", "))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("store: update row %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: update row %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRowNotFound, id)
	}
	return nil
}

// DeleteRow removes a row by id.
func (s *SQLStore) DeleteRow(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.schema.Table)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("store: delete row %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete row %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRowNotFound, id)
	}
	return nil
}
