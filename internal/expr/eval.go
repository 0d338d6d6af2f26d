package expr

import (
	"fmt"
	"sort"

	"gradedb/internal/expr/ast"
)

// Evaluate computes the expression over the given variable bindings. It is a
// pure function: unbound variables and division by zero are errors, nothing
// is mutated.
func Evaluate(e ast.Expr, bindings map[string]float64) (float64, error) {
	switch node := e.(type) {
	case *ast.NumberLiteral:
		return node.Value, nil

	case *ast.Variable:
		val, ok := bindings[node.Name]
		if !ok {
			return 0, fmt.Errorf("unbound variable %q", node.Name)
		}
		return val, nil

	case *ast.UnaryExpr:
		val, err := Evaluate(node.Operand, bindings)
		if err != nil {
			return 0, err
		}
		return -val, nil

	case *ast.BinaryExpr:
		left, err := Evaluate(node.Left, bindings)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(node.Right, bindings)
		if err != nil {
			return 0, err
		}
		switch node.Op {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, fmt.Errorf("division by zero in %s", node.String())
			}
			return left / right, nil
		}
		return 0, fmt.Errorf("unknown operator %q", node.Op)
	}
	return 0, fmt.Errorf("unknown expression node %T", e)
}

// ReferencedVariables returns the sorted set of variable names the
// expression refers to.
func ReferencedVariables(e ast.Expr) []string {
	seen := make(map[string]struct{})
	collectVariables(e, seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVariables(e ast.Expr, seen map[string]struct{}) {
	switch node := e.(type) {
	case *ast.Variable:
		seen[node.Name] = struct{}{}
	case *ast.UnaryExpr:
		collectVariables(node.Operand, seen)
	case *ast.BinaryExpr:
		collectVariables(node.Left, seen)
		collectVariables(node.Right, seen)
	}
}
