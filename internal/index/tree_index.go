package index

import (
	"github.com/google/btree"

	"gradedb/internal/domain/data"
	"gradedb/internal/domain/value"
)

const btreeDegree = 16

// treeItem is one index entry stored in the B-tree.
type treeItem struct {
	key value.Value
	ids []data.RecordID
}

func (i treeItem) Less(than btree.Item) bool {
	// Kinds are uniform past the boundary check, so Compare cannot fail here.
	cmp, _ := value.Compare(i.key, than.(treeItem).key)
	return cmp < 0
}

// TreeIndex backs the index contract with a balanced B-tree: O(log n) Add
// and Get, with ordered iteration available for range lookups.
type TreeIndex struct {
	attribute string
	dataType  value.DataType
	tree      *btree.BTree
}

// NewTreeIndex builds a balanced tree index on the given attribute by
// scanning every current record of the source table.
func NewTreeIndex(src RecordSource, attribute string) (*TreeIndex, error) {
	dt, err := src.TableSchema().DataType(attribute)
	if err != nil {
		return nil, err
	}
	groups, err := scanGroups(src, attribute)
	if err != nil {
		return nil, err
	}

	idx := &TreeIndex{
		attribute: attribute,
		dataType:  dt,
		tree:      btree.New(btreeDegree),
	}
	for _, g := range groups {
		idx.tree.ReplaceOrInsert(treeItem{key: g.key, ids: g.ids})
	}
	logBuilt(KindBTree, attribute, idx.tree.Len())
	return idx, nil
}

func (x *TreeIndex) DataType() value.DataType {
	return x.dataType
}

func (x *TreeIndex) NumEntries() int {
	return x.tree.Len()
}

func (x *TreeIndex) Add(key value.Value, id data.RecordID) error {
	if err := checkKind(x.attribute, x.dataType, key.DataType()); err != nil {
		return err
	}
	ids := []data.RecordID{id}
	if existing := x.tree.Get(treeItem{key: key}); existing != nil {
		ids = append(existing.(treeItem).ids, id)
	}
	x.tree.ReplaceOrInsert(treeItem{key: key, ids: ids})
	return nil
}

func (x *TreeIndex) Clear() {
	x.tree = btree.New(btreeDegree)
}

func (x *TreeIndex) Get(key value.Value) ([]data.RecordID, error) {
	if err := checkKind(x.attribute, x.dataType, key.DataType()); err != nil {
		return nil, err
	}
	item := x.tree.Get(treeItem{key: key})
	if item == nil {
		return nil, nil
	}
	return item.(treeItem).ids, nil
}

// GetRange returns the record identifiers for all keys in the inclusive
// range [low, high], in ascending key order. This is the ordered-iteration
// extension the balanced backend makes possible.
func (x *TreeIndex) GetRange(low, high value.Value) ([]data.RecordID, error) {
	if err := checkKind(x.attribute, x.dataType, low.DataType()); err != nil {
		return nil, err
	}
	if err := checkKind(x.attribute, x.dataType, high.DataType()); err != nil {
		return nil, err
	}

	var ids []data.RecordID
	x.tree.AscendGreaterOrEqual(treeItem{key: low}, func(item btree.Item) bool {
		entry := item.(treeItem)
		cmp, _ := value.Compare(entry.key, high)
		if cmp > 0 {
			return false
		}
		ids = append(ids, entry.ids...)
		return true
	})
	return ids, nil
}
