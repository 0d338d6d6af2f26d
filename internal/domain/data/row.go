package data

import "gradedb/internal/domain/value"

// RecordID is an opaque row identifier within one table. IDs are assigned
// densely in insertion order and stay stable for the table's lifetime.
type RecordID int

// Row represents a single table row.
// Key = attribute name, Value = typed cell value.
type Row map[string]value.Value

// Copy creates a copy of the row to prevent mutation of shared state.
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
