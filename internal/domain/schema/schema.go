package schema

import (
	"gradedb/internal/domain/errors"
	"gradedb/internal/domain/value"
)

// Attribute is one named, typed column of a table schema.
type Attribute struct {
	Name string         `json:"name"`
	Type value.DataType `json:"type"`
}

// TableSchema represents table metadata: the ordered attribute list.
type TableSchema struct {
	TableName  string
	Attributes []Attribute
}

// DataType returns the declared kind of the named attribute.
func (s *TableSchema) DataType(name string) (value.DataType, error) {
	for _, attr := range s.Attributes {
		if attr.Name == name {
			return attr.Type, nil
		}
	}
	return "", &errors.AttributeNotFoundError{Table: s.TableName, Attribute: name}
}

// HasAttribute reports whether the schema declares the named attribute.
func (s *TableSchema) HasAttribute(name string) bool {
	for _, attr := range s.Attributes {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// Names returns the attribute names in declaration order.
func (s *TableSchema) Names() []string {
	names := make([]string, len(s.Attributes))
	for i, attr := range s.Attributes {
		names[i] = attr.Name
	}
	return names
}

// Shared returns the attribute names declared by both schemas, in this
// schema's declaration order. Natural joins match on exactly these.
func (s *TableSchema) Shared(other *TableSchema) []string {
	var shared []string
	for _, attr := range s.Attributes {
		if other.HasAttribute(attr.Name) {
			shared = append(shared, attr.Name)
		}
	}
	return shared
}

// Project returns a sub-schema containing the named attributes in the order
// given. Unknown attribute names are an error.
func (s *TableSchema) Project(names []string) (*TableSchema, error) {
	attrs := make([]Attribute, 0, len(names))
	for _, name := range names {
		dt, err := s.DataType(name)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, Attribute{Name: name, Type: dt})
	}
	return &TableSchema{TableName: s.TableName, Attributes: attrs}, nil
}

// Copy returns a deep copy of the schema.
func (s *TableSchema) Copy() *TableSchema {
	attrs := make([]Attribute, len(s.Attributes))
	copy(attrs, s.Attributes)
	return &TableSchema{TableName: s.TableName, Attributes: attrs}
}
