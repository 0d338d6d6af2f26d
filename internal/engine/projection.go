package engine

import (
	"gradedb/internal/domain/data"
	"gradedb/internal/domain/multiset"
)

// Project retains only the named attributes, in the order given. An unknown
// attribute name is an error.
func (t *Table) Project(attributes []string) (*Table, error) {
	sub, err := t.Schema.Project(attributes)
	if err != nil {
		return nil, err
	}

	result := t.derive(t.Name, sub)
	for _, row := range t.Records {
		projected := make(data.Row, len(attributes))
		for _, name := range attributes {
			if val, ok := row[name]; ok {
				projected[name] = val
			}
		}
		result.Records = append(result.Records, projected)
	}
	return result, nil
}

// Distinct removes rows that are fully equal to an earlier row, preserving
// the first occurrence's order. Row identity is the tuple of attribute
// values in schema order.
func (t *Table) Distinct() *Table {
	result := t.derive(t.Name, t.Schema.Copy())
	seen := multiset.New()

	for _, row := range t.Records {
		fp := t.fingerprint(row)
		if seen.Add(fp) > 1 {
			continue
		}
		result.Records = append(result.Records, row.Copy())
	}
	return result
}

// fingerprint renders a row as a canonical string over the schema's
// attribute order. Absent attributes contribute an empty slot.
func (t *Table) fingerprint(row data.Row) string {
	parts := make([]string, len(t.Schema.Attributes))
	for i, attr := range t.Schema.Attributes {
		if val, ok := row[attr.Name]; ok {
			parts[i] = val.Key()
		}
	}
	return encodeKeyParts(parts)
}
