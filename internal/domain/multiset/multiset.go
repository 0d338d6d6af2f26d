package multiset

import "gradedb/internal/domain/errors"

// Multiset counts occurrences of string keys. Counts are never negative;
// setting a negative count is a precondition violation rejected before any
// state changes.
type Multiset struct {
	counts map[string]int
}

func New() *Multiset {
	return &Multiset{counts: make(map[string]int)}
}

// Add increments the key's occurrence count and returns the new count.
func (m *Multiset) Add(key string) int {
	m.counts[key]++
	return m.counts[key]
}

// Count returns the key's occurrence count, zero if absent.
func (m *Multiset) Count(key string) int {
	return m.counts[key]
}

// SetCount overwrites the key's occurrence count. A count of zero removes
// the key; a negative count fails with NegativeCountError.
func (m *Multiset) SetCount(key string, count int) error {
	if count < 0 {
		return &errors.NegativeCountError{Count: count}
	}
	if count == 0 {
		delete(m.counts, key)
		return nil
	}
	m.counts[key] = count
	return nil
}

// Len returns the number of distinct keys.
func (m *Multiset) Len() int {
	return len(m.counts)
}
