package engine

import (
	"fmt"

	"gradedb/internal/domain/data"
	dberrors "gradedb/internal/domain/errors"
	"gradedb/internal/domain/schema"
	"gradedb/internal/index"
)

// Table is an in-memory table: a schema, a record store addressed by dense
// RecordIDs, and zero or more attached secondary indexes.
//
// Indexes reflect the records present when they were built plus whatever was
// added through index.Add. Insert does NOT update attached indexes; the
// caller owns that consistency (see package index).
type Table struct {
	Name      string
	Schema    *schema.TableSchema
	Records   []data.Row
	Indexes   map[string]index.Index
	observers []Observer
	sessionID string
}

// NewTable creates an empty table over the given schema.
func NewTable(name string, s *schema.TableSchema) *Table {
	return &Table{
		Name:      name,
		Schema:    s,
		Records:   []data.Row{},
		Indexes:   make(map[string]index.Index),
		sessionID: newSessionID(),
	}
}

// NumRecords returns the current record count.
func (t *Table) NumRecords() int {
	return len(t.Records)
}

// TableSchema returns the table's schema. It exists so Table satisfies
// index.RecordSource alongside the exported Schema field.
func (t *Table) TableSchema() *schema.TableSchema {
	return t.Schema
}

// GetRecord returns the record stored under id.
func (t *Table) GetRecord(id data.RecordID) (data.Row, error) {
	if id < 0 || int(id) >= len(t.Records) {
		return nil, fmt.Errorf("record %d out of range in table %s (0..%d)", id, t.Name, len(t.Records)-1)
	}
	return t.Records[id], nil
}

// Insert validates the row against the schema and appends it, returning the
// new record's ID. Attached indexes are NOT updated; call Add on them
// explicitly if they should see the new record.
func (t *Table) Insert(row data.Row) (data.RecordID, error) {
	stored := row.Copy() // prevent mutation of caller's data

	for name, val := range stored {
		declared, err := t.Schema.DataType(name)
		if err != nil {
			return 0, err
		}
		if val.DataType() != declared {
			return 0, dberrors.NewTypeMismatch(name, string(declared), string(val.DataType()))
		}
	}

	id := data.RecordID(len(t.Records))
	t.Records = append(t.Records, stored)
	return id, nil
}

// BuildIndex constructs an index of the requested kind on the attribute and
// attaches it, replacing any previous index on that attribute.
func (t *Table) BuildIndex(kind index.Kind, attribute string) (index.Index, error) {
	t.notify(EventIndexBuildStart, attribute)
	idx, err := index.New(kind, t, attribute)
	if err != nil {
		return nil, fmt.Errorf("build %s index on %s.%s: %w", kind, t.Name, attribute, err)
	}
	t.Indexes[attribute] = idx
	t.notify(EventIndexBuildEnd, attribute)
	return idx, nil
}

// Index returns the index attached on the attribute, if any.
func (t *Table) Index(attribute string) (index.Index, bool) {
	idx, ok := t.Indexes[attribute]
	return idx, ok
}

// derive creates an empty result table sharing this table's session. Query
// operators use it so result tables carry a usable schema and index map.
func (t *Table) derive(name string, s *schema.TableSchema) *Table {
	return &Table{
		Name:      name,
		Schema:    s,
		Records:   []data.Row{},
		Indexes:   make(map[string]index.Index),
		observers: t.observers,
		sessionID: t.sessionID,
	}
}
