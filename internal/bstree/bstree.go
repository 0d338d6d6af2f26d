// Package bstree implements an unbalanced binary search tree ordered by an
// externally supplied comparator. There is no rebalancing: insertion order
// determines tree shape, so sorted input degenerates into a linear chain.
package bstree

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by the strict lookup when a key has no entry.
var ErrKeyNotFound = errors.New("bstree: key not found")

// CompareFunc is a strict total order over keys: negative if a < b, zero if
// equal, positive if a > b.
type CompareFunc[K any] func(a, b K) int

// Pair is one (key, value) input for bulk construction.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// node owns its key, value, and at most one left and one right child.
// Invariant: every key in the left subtree compares strictly less than the
// node's key, every key in the right subtree strictly greater.
type node[K, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Tree is an ordered key/value store built from linked binary nodes.
type Tree[K, V any] struct {
	cmp  CompareFunc[K]
	root *node[K, V]
}

// New creates an empty tree using the given ordering.
func New[K, V any](cmp CompareFunc[K]) *Tree[K, V] {
	return &Tree[K, V]{cmp: cmp}
}

// NewFromPairs creates a tree and inserts every pair in the order given.
// Later pairs with a duplicate key overwrite earlier ones.
func NewFromPairs[K, V any](cmp CompareFunc[K], pairs []Pair[K, V]) *Tree[K, V] {
	t := New[K, V](cmp)
	for _, p := range pairs {
		t.AddOrUpdate(p.Key, p.Value)
	}
	return t
}

// AddOrUpdate inserts the pair as a new leaf, or overwrites the value in
// place if the key already exists. Re-inserting an existing key never
// changes the tree shape. The walk is iterative to stay safe on
// degenerate, linear-depth trees.
func (t *Tree[K, V]) AddOrUpdate(key K, value V) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		return
	}
	cur := t.root
	for {
		switch cmp := t.cmp(key, cur.key); {
		case cmp < 0:
			if cur.left == nil {
				cur.left = &node[K, V]{key: key, value: value}
				return
			}
			cur = cur.left
		case cmp > 0:
			if cur.right == nil {
				cur.right = &node[K, V]{key: key, value: value}
				return
			}
			cur = cur.right
		default:
			cur.value = value
			return
		}
	}
}

// Get returns the value stored under key, or false if the key is absent.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	cur := t.root
	for cur != nil {
		switch cmp := t.cmp(key, cur.key); {
		case cmp < 0:
			cur = cur.left
		case cmp > 0:
			cur = cur.right
		default:
			return cur.value, true
		}
	}
	var zero V
	return zero, false
}

// Apply is the strict form of Get: it fails with ErrKeyNotFound when the
// key has no entry. Use Get when absence is an expected outcome.
func (t *Tree[K, V]) Apply(key K) (V, error) {
	v, ok := t.Get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Size counts all nodes by full traversal. Deliberately O(n) per call:
// simplicity over a cached counter.
func (t *Tree[K, V]) Size() int {
	if t.root == nil {
		return 0
	}
	count := 0
	stack := []*node[K, V]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	return count
}

// Depth returns the number of nodes on the longest root-to-leaf path.
// An empty tree has depth 0.
func (t *Tree[K, V]) Depth() int {
	if t.root == nil {
		return 0
	}
	type frame struct {
		n     *node[K, V]
		depth int
	}
	max := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return max
}

// Clear discards the root reference; all nodes become unreachable and are
// reclaimed by the garbage collector. Clearing an empty tree is a no-op.
func (t *Tree[K, V]) Clear() {
	t.root = nil
}
