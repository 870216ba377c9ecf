// Package store provides data-access implementations of the gridview
// row store contract: a database/sql-backed store (SQLite by default)
// and an in-memory store for demos and tests.
package store

import "github.com/example/gridview/domain/model"

// FieldDef declares one persisted row field and its type.
type FieldDef struct {
	Name string
	Type model.FieldType
}

// Schema describes the table a SQL-backed store reads and writes.
type Schema struct {
	Table  string
	Fields []FieldDef
}

// ClientSchema returns the schema of the CRM clients table.
func ClientSchema() Schema {
	return Schema{
		Table: "clients",
		Fields: []FieldDef{
			{Name: "name", Type: model.FieldTypeText},
			{Name: "email", Type: model.FieldTypeText},
			{Name: "phone", Type: model.FieldTypeText},
			{Name: "company", Type: model.FieldTypeText},
			{Name: "status", Type: model.FieldTypeText},
			{Name: "created_at", Type: model.FieldTypeTimestamp},
		},
	}
}
