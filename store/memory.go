package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/gridview/domain/model"
)

// Memory is an in-memory row store for demos and tests. It is safe for
// concurrent use so front-end command goroutines can share it.
type Memory struct {
	mu   sync.Mutex
	rows []model.Row
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWithRows creates an in-memory store preloaded with rows.
func NewMemoryWithRows(rows []model.Row) *Memory {
	m := &Memory{rows: make([]model.Row, len(rows))}
	for i, r := range rows {
		m.rows[i] = r.Clone()
	}
	return m
}

// ListRows returns a copy of the complete row set.
func (m *Memory) ListRows(_ context.Context) ([]model.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Row, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Clone()
	}
	return out, nil
}

// CreateRow appends a new row with a generated identifier.
func (m *Memory) CreateRow(_ context.Context, fields map[string]model.Value) (model.Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := model.NewRow(uuid.NewString(), fields).Clone()
	m.rows = append(m.rows, row)
	return row.Clone(), nil
}

// UpdateRow overwrites the given fields of an existing row.
func (m *Memory) UpdateRow(_ context.Context, id string, fields map[string]model.Value) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == id {
			m.rows[i] = r.Merge(fields)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRowNotFound, id)
}

// DeleteRow removes a row by id.
func (m *Memory) DeleteRow(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRowNotFound, id)
}

// SeedClients returns a small CRM client data set so the demo commands
// work out of the box.
func SeedClients() []model.Row {
	day := func(d int) time.Time {
		return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	}
	client := func(id, name, email, phone, company, status string, created time.Time) model.Row {
		return model.NewRow(id, map[string]model.Value{
			"name":       model.Text(name),
			"email":      model.Text(email),
			"phone":      model.Text(phone),
			"company":    model.Text(company),
			"status":     model.Text(status),
			"created_at": model.Timestamp(created),
		})
	}
	return []model.Row{
		client("c-01", "Alice Nguyen", "alice@acme.test", "555-0101", "Acme", "active", day(3)),
		client("c-02", "Bob Smith", "bob@globex.test", "555-0102", "Globex", "active", day(5)),
		client("c-03", "Carol Jones", "carol@acme.test", "555-0103", "Acme", "lead", day(8)),
		client("c-04", "Dan Brown", "dan@initech.test", "555-0104", "Initech", "inactive", day(11)),
		client("c-05", "Erin White", "erin@globex.test", "555-0105", "Globex", "lead", day(14)),
		client("c-06", "Frank Green", "frank@acme.test", "555-0106", "Acme", "active", day(17)),
		client("c-07", "Grace Lee", "grace@initech.test", "555-0107", "Initech", "active", day(20)),
		client("c-08", "Hank Moore", "hank@umbrella.test", "555-0108", "Umbrella", "lead", day(23)),
		client("c-09", "Ivy Chen", "ivy@umbrella.test", "555-0109", "Umbrella", "active", day(26)),
		client("c-10", "Jack Davis", "jack@globex.test", "555-0110", "Globex", "inactive", day(29)),
	}
}
