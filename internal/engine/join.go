package engine

import (
	"fmt"
	"log/slog"
	"strings"

	"gradedb/internal/domain/data"
	"gradedb/internal/domain/schema"
)

// NaturalJoin performs an inner join on all attributes shared by name
// between the two tables' schemas, using a hash join: index the right table
// on the shared-attribute tuple, then probe with every left row. A row that
// matches nothing on the other side contributes nothing to the result.
//
// Result rows carry the union of attributes: the left schema in full,
// followed by the right schema's non-shared attributes.
func (t *Table) NaturalJoin(other *Table) (*Table, error) {
	shared := t.Schema.Shared(other.Schema)
	if len(shared) == 0 {
		return nil, fmt.Errorf("natural join of %s and %s: no shared attributes", t.Name, other.Name)
	}
	t.notify(EventJoinStart, other.Name)

	slog.Debug("starting natural join",
		slog.String("left_table", t.Name),
		slog.String("right_table", other.Name),
		slog.Any("shared_attributes", shared),
		slog.Int("left_rows", len(t.Records)),
		slog.Int("right_rows", len(other.Records)))

	// Build phase: hash the right table on the shared-attribute tuple.
	buckets := make(map[string][]data.RecordID)
	for i, row := range other.Records {
		key, ok := joinKey(row, shared)
		if !ok {
			continue // rows missing a shared attribute never match
		}
		buckets[key] = append(buckets[key], data.RecordID(i))
	}

	joined := t.derive(t.Name+"_"+other.Name, joinedSchema(t.Schema, other.Schema))

	// Probe phase: combine each left row with every matching right row.
	for _, leftRow := range t.Records {
		key, ok := joinKey(leftRow, shared)
		if !ok {
			continue
		}
		for _, rightID := range buckets[key] {
			rightRow := other.Records[rightID]
			combined := leftRow.Copy()
			for name, val := range rightRow {
				if _, isShared := combined[name]; !isShared {
					combined[name] = val
				}
			}
			joined.Records = append(joined.Records, combined)
		}
	}

	slog.Info("natural join completed",
		slog.String("left_table", t.Name),
		slog.String("right_table", other.Name),
		slog.Int("result_rows", len(joined.Records)))
	t.notify(EventJoinEnd, other.Name)
	return joined, nil
}

// joinKey builds the composite probe key from the shared attributes.
// Canonical value keys keep differing kinds distinct.
func joinKey(row data.Row, shared []string) (string, bool) {
	parts := make([]string, len(shared))
	for i, name := range shared {
		val, ok := row[name]
		if !ok {
			return "", false
		}
		parts[i] = val.Key()
	}
	return encodeKeyParts(parts), true
}

// encodeKeyParts length-prefixes each part so the composite key is
// unambiguous even when a TEXT value contains the separator byte.
func encodeKeyParts(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		fmt.Fprintf(&b, "%d:%s", len(p), p)
	}
	return b.String()
}

// joinedSchema is the left schema in full plus the right schema's attributes
// not already present by name.
func joinedSchema(left, right *schema.TableSchema) *schema.TableSchema {
	out := left.Copy()
	out.TableName = left.TableName + "_" + right.TableName
	for _, attr := range right.Attributes {
		if !left.HasAttribute(attr.Name) {
			out.Attributes = append(out.Attributes, attr)
		}
	}
	return out
}
