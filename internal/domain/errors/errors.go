package errors

import "fmt"

// TypeMismatchError reports a value whose declared kind differs from the
// kind a comparison or index expects. It is raised before any state changes.
type TypeMismatchError struct {
	Attribute string // attribute or index name (empty if not known)
	Expected  string // declared kind
	Got       string // kind actually supplied
}

func (e *TypeMismatchError) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("type mismatch on %s: expected %s, got %s", e.Attribute, e.Expected, e.Got)
	}
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

func NewTypeMismatch(attribute, expected, got string) *TypeMismatchError {
	return &TypeMismatchError{
		Attribute: attribute,
		Expected:  expected,
		Got:       got,
	}
}

// AttributeNotFoundError reports a reference to an attribute the schema does
// not declare.
type AttributeNotFoundError struct {
	Table     string
	Attribute string
}

func (e *AttributeNotFoundError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("attribute %s not found in table %s", e.Attribute, e.Table)
	}
	return fmt.Sprintf("attribute %s not found", e.Attribute)
}

// NegativeCountError reports an attempt to set a negative occurrence count.
type NegativeCountError struct {
	Count int
}

func (e *NegativeCountError) Error() string {
	return fmt.Sprintf("negative occurrence count: %d", e.Count)
}
