package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"gradedb/internal/domain/data"
	"gradedb/internal/domain/schema"
	"gradedb/internal/domain/value"
	"gradedb/internal/engine"
)

// LoadTable reads one dataset file into an in-memory table. Each raw cell is
// decoded against the schema's declared attribute type; rows that disagree
// with the schema fail the load.
func LoadTable(path string, logger *slog.Logger) (*engine.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc tableDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	s := &schema.TableSchema{
		TableName:  doc.Schema.TableName,
		Attributes: make([]schema.Attribute, 0, len(doc.Schema.Attributes)),
	}
	for _, a := range doc.Schema.Attributes {
		s.Attributes = append(s.Attributes, schema.Attribute{
			Name: a.Name,
			Type: value.DataType(a.Type),
		})
	}

	table := engine.NewTable(doc.Schema.TableName, s)
	for i, rawRow := range doc.Rows {
		row := make(data.Row, len(rawRow))
		for name, cell := range rawRow {
			declared, err := s.DataType(name)
			if err != nil {
				return nil, fmt.Errorf("dataset %s row %d: %w", path, i, err)
			}
			val, err := value.Decode(declared, cell)
			if err != nil {
				return nil, fmt.Errorf("dataset %s row %d attribute %s: %w", path, i, name, err)
			}
			row[name] = val
		}
		if _, err := table.Insert(row); err != nil {
			return nil, fmt.Errorf("dataset %s row %d: %w", path, i, err)
		}
	}

	logger.Info("table loaded",
		slog.String("table", table.Name),
		slog.Int("rows", table.NumRecords()),
	)
	return table, nil
}
