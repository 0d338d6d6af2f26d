package engine

import (
	"fmt"
	"log/slog"

	dberrors "gradedb/internal/domain/errors"
	"gradedb/internal/domain/value"
)

// FilterByScan returns the rows whose attribute equals key exactly, by full
// scan. Equality is a comparison result of zero under the declared ordering.
func (t *Table) FilterByScan(attribute string, key value.Value) (*Table, error) {
	declared, err := t.Schema.DataType(attribute)
	if err != nil {
		return nil, err
	}
	if key.DataType() != declared {
		return nil, typeMismatch(attribute, declared, key.DataType())
	}
	t.notify(EventScan, attribute)

	result := t.derive(t.Name, t.Schema.Copy())
	for _, row := range t.Records {
		val, ok := row[attribute]
		if !ok {
			continue
		}
		cmp, err := value.Compare(val, key)
		if err != nil {
			return nil, err
		}
		if cmp == 0 {
			result.Records = append(result.Records, row.Copy())
		}
	}

	slog.Debug("scan filter",
		slog.String("table", t.Name),
		slog.String("attribute", attribute),
		slog.Int("matches", len(result.Records)))
	return result, nil
}

// FilterRangeByScan returns the rows whose attribute value lies in the
// inclusive range [low, high] under the declared ordering.
func (t *Table) FilterRangeByScan(attribute string, low, high value.Value) (*Table, error) {
	declared, err := t.Schema.DataType(attribute)
	if err != nil {
		return nil, err
	}
	for _, bound := range []value.Value{low, high} {
		if bound.DataType() != declared {
			return nil, typeMismatch(attribute, declared, bound.DataType())
		}
	}
	t.notify(EventScan, attribute)

	result := t.derive(t.Name, t.Schema.Copy())
	for _, row := range t.Records {
		val, ok := row[attribute]
		if !ok {
			continue
		}
		cmpLow, err := value.Compare(val, low)
		if err != nil {
			return nil, err
		}
		cmpHigh, err := value.Compare(val, high)
		if err != nil {
			return nil, err
		}
		if cmpLow >= 0 && cmpHigh <= 0 {
			result.Records = append(result.Records, row.Copy())
		}
	}

	slog.Debug("range filter",
		slog.String("table", t.Name),
		slog.String("attribute", attribute),
		slog.Int("matches", len(result.Records)))
	return result, nil
}

// FilterByIndex answers the same equality predicate as FilterByScan through
// an attached index. Results match a scan exactly as long as the index has
// been kept current.
func (t *Table) FilterByIndex(attribute string, key value.Value) (*Table, error) {
	idx, ok := t.Indexes[attribute]
	if !ok {
		return nil, fmt.Errorf("no index on %s.%s", t.Name, attribute)
	}
	ids, err := idx.Get(key)
	if err != nil {
		return nil, err
	}

	result := t.derive(t.Name, t.Schema.Copy())
	for _, id := range ids {
		row, err := t.GetRecord(id)
		if err != nil {
			return nil, err
		}
		result.Records = append(result.Records, row.Copy())
	}
	return result, nil
}

func typeMismatch(attribute string, want, got value.DataType) error {
	return dberrors.NewTypeMismatch(attribute, string(want), string(got))
}
