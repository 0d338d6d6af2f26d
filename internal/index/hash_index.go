package index

import (
	"gradedb/internal/domain/data"
	"gradedb/internal/domain/value"
)

// HashIndex backs the index contract with a hash map, giving expected O(1)
// Add and Get with no ordering over keys.
type HashIndex struct {
	attribute string
	dataType  value.DataType
	entries   map[string][]data.RecordID // canonical key -> record IDs
}

// NewHashIndex builds a hash index on the given attribute by scanning every
// current record of the source table. The index's data type is the schema's
// declared type for the attribute, independent of the data observed.
func NewHashIndex(src RecordSource, attribute string) (*HashIndex, error) {
	dt, err := src.TableSchema().DataType(attribute)
	if err != nil {
		return nil, err
	}
	groups, err := scanGroups(src, attribute)
	if err != nil {
		return nil, err
	}

	idx := &HashIndex{
		attribute: attribute,
		dataType:  dt,
		entries:   make(map[string][]data.RecordID, len(groups)),
	}
	for _, g := range groups {
		idx.entries[g.key.Key()] = g.ids
	}
	logBuilt(KindHash, attribute, len(idx.entries))
	return idx, nil
}

func (x *HashIndex) DataType() value.DataType {
	return x.dataType
}

func (x *HashIndex) NumEntries() int {
	return len(x.entries)
}

func (x *HashIndex) Add(key value.Value, id data.RecordID) error {
	if err := checkKind(x.attribute, x.dataType, key.DataType()); err != nil {
		return err
	}
	x.entries[key.Key()] = append(x.entries[key.Key()], id)
	return nil
}

func (x *HashIndex) Clear() {
	x.entries = make(map[string][]data.RecordID)
}

func (x *HashIndex) Get(key value.Value) ([]data.RecordID, error) {
	if err := checkKind(x.attribute, x.dataType, key.DataType()); err != nil {
		return nil, err
	}
	return x.entries[key.Key()], nil
}
