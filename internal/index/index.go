// Package index provides per-attribute secondary indexes mapping attribute
// values to record identifiers. Three interchangeable backends implement the
// same contract: a hash map, a balanced B-tree, and an unbalanced binary
// search tree.
//
// Indexes are built eagerly from a full table scan and are NOT kept in sync
// with later table mutation: whoever owns both the table and the index must
// call Add after every insert, or the index silently under-reports matches
// for the missing rows. This is a documented external contract, not a bug.
package index

import (
	"fmt"
	"log/slog"

	"gradedb/internal/domain/data"
	dberrors "gradedb/internal/domain/errors"
	"gradedb/internal/domain/schema"
	"gradedb/internal/domain/value"
)

// Kind selects a backing store at construction time.
type Kind string

const (
	KindHash       Kind = "hash"
	KindBTree      Kind = "btree"
	KindUnbalanced Kind = "bstree"
)

// Index is the capability contract every variant satisfies.
type Index interface {
	// DataType is the declared kind of keys this index accepts, fixed at
	// construction from the table schema.
	DataType() value.DataType

	// NumEntries is the number of distinct keys currently indexed.
	NumEntries() int

	// Add associates one more record identifier with key, preserving any
	// identifiers already associated (append, never replace).
	Add(key value.Value, id data.RecordID) error

	// Clear removes all entries. DataType is retained and the index stays
	// usable.
	Clear()

	// Get returns all record identifiers associated with key, in the order
	// they were added. An absent key yields an empty result, not an error.
	// A key of the wrong kind fails with a TypeMismatchError.
	Get(key value.Value) ([]data.RecordID, error)
}

// RecordSource is the slice of a table an index build consumes.
type RecordSource interface {
	NumRecords() int
	GetRecord(id data.RecordID) (data.Row, error)
	TableSchema() *schema.TableSchema
}

// New builds an index of the requested kind on the given attribute.
func New(kind Kind, src RecordSource, attribute string) (Index, error) {
	switch kind {
	case KindHash:
		return NewHashIndex(src, attribute)
	case KindBTree:
		return NewTreeIndex(src, attribute)
	case KindUnbalanced:
		return NewUnbalancedIndex(src, attribute)
	}
	return nil, fmt.Errorf("unknown index kind %q", kind)
}

// group is one (key, record identifiers) pair produced by the build scan.
type group struct {
	key value.Value
	ids []data.RecordID
}

// scanGroups reads every record 0..NumRecords-1 and groups record IDs by the
// attribute's value, preserving scan order within each group. Records
// missing the attribute are skipped.
func scanGroups(src RecordSource, attribute string) ([]group, error) {
	var groups []group
	byKey := make(map[string]int)

	for i := 0; i < src.NumRecords(); i++ {
		id := data.RecordID(i)
		row, err := src.GetRecord(id)
		if err != nil {
			return nil, err
		}
		val, ok := row[attribute]
		if !ok {
			continue
		}
		if pos, seen := byKey[val.Key()]; seen {
			groups[pos].ids = append(groups[pos].ids, id)
			continue
		}
		byKey[val.Key()] = len(groups)
		groups = append(groups, group{key: val, ids: []data.RecordID{id}})
	}
	return groups, nil
}

// checkKind verifies the key's declared kind against the index's, before any
// mutation or lookup.
func checkKind(attribute string, want, got value.DataType) error {
	if want != got {
		return dberrors.NewTypeMismatch(attribute, string(want), string(got))
	}
	return nil
}

func logBuilt(kind Kind, attribute string, entries int) {
	slog.Debug("index built",
		slog.String("kind", string(kind)),
		slog.String("attribute", attribute),
		slog.Int("entries", entries))
}
