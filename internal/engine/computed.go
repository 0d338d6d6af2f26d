package engine

import (
	"fmt"
	"log/slog"

	"gradedb/internal/domain/schema"
	"gradedb/internal/domain/value"
	"gradedb/internal/expr"
)

// AddComputedColumn parses the arithmetic expression, checks that every
// referenced variable is a numeric attribute of the table, and appends a
// FLOAT attribute holding the expression's value per record.
func (t *Table) AddComputedColumn(name, exprSrc string) error {
	if t.Schema.HasAttribute(name) {
		return fmt.Errorf("attribute %s already exists in table %s", name, t.Name)
	}

	parsed, err := expr.Parse(exprSrc)
	if err != nil {
		return fmt.Errorf("computed column %s: %w", name, err)
	}

	refs := expr.ReferencedVariables(parsed)
	for _, ref := range refs {
		dt, err := t.Schema.DataType(ref)
		if err != nil {
			return fmt.Errorf("computed column %s: %w", name, err)
		}
		if dt != value.TypeInt && dt != value.TypeFloat {
			return fmt.Errorf("computed column %s: attribute %s is %s, want a numeric type", name, ref, dt)
		}
	}

	// Evaluate every record before touching any row, so a failure partway
	// through leaves the table unchanged.
	computed := make([]value.Value, len(t.Records))
	for i, row := range t.Records {
		bindings := make(map[string]float64, len(refs))
		for _, ref := range refs {
			val, ok := row[ref]
			if !ok {
				return fmt.Errorf("computed column %s: record %d has no value for %s", name, i, ref)
			}
			f, _ := val.AsFloat()
			bindings[ref] = f
		}
		result, err := expr.Evaluate(parsed, bindings)
		if err != nil {
			return fmt.Errorf("computed column %s at record %d: %w", name, i, err)
		}
		computed[i] = value.Float(result)
	}

	for i, row := range t.Records {
		row[name] = computed[i]
	}
	t.Schema.Attributes = append(t.Schema.Attributes, schema.Attribute{Name: name, Type: value.TypeFloat})

	slog.Debug("computed column added",
		slog.String("table", t.Name),
		slog.String("attribute", name),
		slog.String("expression", parsed.String()))
	return nil
}
