package index

import (
	"gradedb/internal/bstree"
	"gradedb/internal/domain/data"
	"gradedb/internal/domain/value"
)

// UnbalancedIndex binds the unbalanced search tree to the index contract,
// grouping multiple record identifiers per key. Lookup cost degrades with
// unlucky insertion order; that tradeoff is the point of this variant.
type UnbalancedIndex struct {
	attribute string
	dataType  value.DataType
	tree      *bstree.Tree[value.Value, []data.RecordID]
}

func valueCompare(a, b value.Value) int {
	// Kinds are uniform past the boundary check, so Compare cannot fail here.
	cmp, _ := value.Compare(a, b)
	return cmp
}

// NewUnbalancedIndex builds an unbalanced-tree index on the given attribute.
// The grouped entries are bulk-loaded in scan order; since AddOrUpdate is
// idempotent per key set, the result matches repeated single-key inserts.
func NewUnbalancedIndex(src RecordSource, attribute string) (*UnbalancedIndex, error) {
	dt, err := src.TableSchema().DataType(attribute)
	if err != nil {
		return nil, err
	}
	groups, err := scanGroups(src, attribute)
	if err != nil {
		return nil, err
	}

	pairs := make([]bstree.Pair[value.Value, []data.RecordID], len(groups))
	for i, g := range groups {
		pairs[i] = bstree.Pair[value.Value, []data.RecordID]{Key: g.key, Value: g.ids}
	}

	idx := &UnbalancedIndex{
		attribute: attribute,
		dataType:  dt,
		tree:      bstree.NewFromPairs(valueCompare, pairs),
	}
	logBuilt(KindUnbalanced, attribute, idx.tree.Size())
	return idx, nil
}

func (x *UnbalancedIndex) DataType() value.DataType {
	return x.dataType
}

// NumEntries delegates to the tree's full-traversal Size.
func (x *UnbalancedIndex) NumEntries() int {
	return x.tree.Size()
}

// Add is a read-modify-write at the tree level: fetch the current group,
// append, store the new group.
func (x *UnbalancedIndex) Add(key value.Value, id data.RecordID) error {
	if err := checkKind(x.attribute, x.dataType, key.DataType()); err != nil {
		return err
	}
	ids, _ := x.tree.Get(key)
	x.tree.AddOrUpdate(key, append(ids, id))
	return nil
}

func (x *UnbalancedIndex) Clear() {
	x.tree.Clear()
}

func (x *UnbalancedIndex) Get(key value.Value) ([]data.RecordID, error) {
	if err := checkKind(x.attribute, x.dataType, key.DataType()); err != nil {
		return nil, err
	}
	ids, _ := x.tree.Get(key)
	return ids, nil
}
