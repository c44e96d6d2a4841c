package query

import (
	"fmt"
	"strings"
)

// Operator is a binary operator as written in the query, upper-cased for keywords.
type Operator string

const (
	OpAnd      Operator = "AND"
	OpOr       Operator = "OR"
	OpXor      Operator = "XOR"
	OpEq       Operator = "="
	OpNotEq    Operator = "<>"
	OpLt       Operator = "<"
	OpLtEq     Operator = "<="
	OpGt       Operator = ">"
	OpGtEq     Operator = ">="
	OpConcat   Operator = "||"
	OpPlus     Operator = "+"
	OpMinus    Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpModulo   Operator = "%"
	OpNot      Operator = "NOT"
	OpNotLike  Operator = "NOT LIKE"
)

// IsComparison reports whether op is one of the comparisons a predicate may use.
func (op Operator) IsComparison() bool {
	switch op {
	case OpEq, OpLt, OpLtEq, OpGt, OpGtEq:
		return true
	}
	return false
}

// Expr is a node of a parsed WHERE condition.
type Expr interface {
	fmt.Stringer
	exprNode()
}

// Ident is a column reference. Quoted is set for "double quoted" identifiers,
// which are also accepted as string literals on the right of a comparison.
type Ident struct {
	Name   string
	Quoted bool
}

// StringLit is a 'single quoted' string.
type StringLit struct {
	Value string
}

// NumberLit keeps the number as written.
type NumberLit struct {
	Value string
}

// BoolLit is TRUE or FALSE.
type BoolLit struct {
	Value bool
}

// NullLit is NULL.
type NullLit struct{}

// Nested is a parenthesized expression.
type Nested struct {
	Expr Expr
}

// BinaryExpr is any infix operation, including AND and OR.
type BinaryExpr struct {
	Left  Expr
	Op    Operator
	Right Expr
}

// LikeExpr is expr [NOT] LIKE pattern.
type LikeExpr struct {
	Expr    Expr
	Pattern Expr
	Negated bool
}

// UnaryExpr is NOT expr, -expr or +expr.
type UnaryExpr struct {
	Op   Operator
	Expr Expr
}

// FuncCall is name(args...).
type FuncCall struct {
	Name string
	Args []Expr
}

func (*Ident) exprNode()      {}
func (*StringLit) exprNode()  {}
func (*NumberLit) exprNode()  {}
func (*BoolLit) exprNode()    {}
func (*NullLit) exprNode()    {}
func (*Nested) exprNode()     {}
func (*BinaryExpr) exprNode() {}
func (*LikeExpr) exprNode()   {}
func (*UnaryExpr) exprNode()  {}
func (*FuncCall) exprNode()   {}

func (e *Ident) String() string {
	if e.Quoted {
		return `"` + strings.ReplaceAll(e.Name, `"`, `""`) + `"`
	}
	return e.Name
}

func (e *StringLit) String() string {
	return "'" + strings.ReplaceAll(e.Value, "'", "''") + "'"
}

func (e *NumberLit) String() string { return e.Value }

func (e *BoolLit) String() string {
	if e.Value {
		return "TRUE"
	}
	return "FALSE"
}

func (e *NullLit) String() string { return "NULL" }

func (e *Nested) String() string { return "(" + e.Expr.String() + ")" }

func (e *BinaryExpr) String() string {
	return e.Left.String() + " " + string(e.Op) + " " + e.Right.String()
}

func (e *LikeExpr) String() string {
	op := "LIKE"
	if e.Negated {
		op = "NOT LIKE"
	}
	return e.Expr.String() + " " + op + " " + e.Pattern.String()
}

func (e *UnaryExpr) String() string {
	if e.Op == OpNot {
		return "NOT " + e.Expr.String()
	}
	return string(e.Op) + e.Expr.String()
}

func (e *FuncCall) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

// Statement is a parsed SELECT. Columns and From are accepted but have no effect.
type Statement struct {
	Columns []Expr // nil entry means *
	From    string
	Where   Expr
}

func (s *Statement) String() string {
	cols := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		if c == nil {
			cols[i] = "*"
		} else {
			cols[i] = c.String()
		}
	}
	out := "SELECT " + strings.Join(cols, ", ")
	if s.From != "" {
		out += " FROM " + s.From
	}
	if s.Where != nil {
		out += " WHERE " + s.Where.String()
	}
	return out
}
