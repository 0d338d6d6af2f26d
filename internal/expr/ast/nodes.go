package ast

import (
	"bytes"
	"strconv"
)

// Expr is the base interface for all arithmetic expression nodes
type Expr interface {
	exprNode()
	String() string
}

// NumberLiteral represents a fixed numeric value
type NumberLiteral struct {
	Literal string // the token literal (e.g. "1.5")
	Value   float64
}

func (n *NumberLiteral) exprNode() {}
func (n *NumberLiteral) String() string {
	if n.Literal != "" {
		return n.Literal
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Variable represents a named binding (e.g. a numeric attribute)
type Variable struct {
	Name string
}

func (v *Variable) exprNode()      {}
func (v *Variable) String() string { return v.Name }

// BinaryExpr: left op right, with op one of + - * /
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Op + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// UnaryExpr: prefix minus
type UnaryExpr struct {
	Op      string
	Operand Expr
}

func (u *UnaryExpr) exprNode() {}
func (u *UnaryExpr) String() string {
	return "(" + u.Op + u.Operand.String() + ")"
}
