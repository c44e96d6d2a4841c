package query

import (
	"fmt"
	"strings"

	"github.com/boolean-maybe/todo/task"
)

// PredicateOp is the test a compiled predicate applies.
type PredicateOp int

const (
	PredEqual PredicateOp = iota
	PredLess
	PredLessEq
	PredGreater
	PredGreaterEq
	PredContains
)

func (op PredicateOp) String() string {
	switch op {
	case PredEqual:
		return "="
	case PredLess:
		return "<"
	case PredLessEq:
		return "<="
	case PredGreater:
		return ">"
	case PredGreaterEq:
		return ">="
	case PredContains:
		return "LIKE"
	default:
		return fmt.Sprintf("PredicateOp(%d)", int(op))
	}
}

// Predicate is one compiled (field, operator, value) test.
type Predicate struct {
	Field task.FieldSpec
	Op    PredicateOp
	Value task.Value
}

func (p Predicate) String() string {
	var value string
	switch p.Value.Kind() {
	case task.KindString:
		value = "'" + strings.ReplaceAll(p.Value.Str(), "'", "''") + "'"
	case task.KindTimestamp:
		value = `"` + p.Value.Date().Format(task.StorageLayout) + `"`
	default:
		value = p.Value.String()
	}
	return fmt.Sprintf("%s %s %s", p.Field.Name, p.Op, value)
}

// expected operand shapes, reported through Format errors
const (
	shapeIdentifier  = "WHERE [Identifier ..]"
	shapeString      = "[.. StringValue]"
	shapeBool        = "[.. true | false]"
	shapeDate        = `[.. "Date"]`
	shapeLikeField   = "[StringIdentifier like ..]"
	shapeLikePattern = "[.. like StringValue]"
)

var comparisonOps = map[Operator]PredicateOp{
	OpEq:   PredEqual,
	OpLt:   PredLess,
	OpLtEq: PredLessEq,
	OpGt:   PredGreater,
	OpGtEq: PredGreaterEq,
}

// Compile validates a WHERE condition against the task schema and flattens
// its AND tree into a predicate list. The first invalid construct aborts
// compilation.
func Compile(where Expr) ([]Predicate, error) {
	if where == nil {
		return nil, nil
	}

	var preds []Predicate
	queue := []Expr{where}

	for len(queue) > 0 {
		expr := queue[0]
		queue = queue[1:]

		switch e := expr.(type) {
		case *Nested:
			queue = append(queue, e.Expr)

		case *BinaryExpr:
			if e.Op == OpAnd {
				queue = append(queue, e.Left, e.Right)
				continue
			}
			if !e.Op.IsComparison() {
				return nil, unhandledOperator(e.Op)
			}
			pred, err := compileComparison(e)
			if err != nil {
				return nil, err
			}
			preds = append(preds, pred)

		case *LikeExpr:
			pred, err := compileLike(e)
			if err != nil {
				return nil, err
			}
			preds = append(preds, pred)

		default:
			return nil, notValidQuery(fmt.Errorf("unsupported condition: %s", expr))
		}
	}

	return preds, nil
}

func compileComparison(e *BinaryExpr) (Predicate, error) {
	ident, ok := e.Left.(*Ident)
	if !ok {
		return Predicate{}, formatError(shapeIdentifier)
	}

	op := comparisonOps[e.Op]
	spec, known := task.LookupField(ident.Name)
	if !known {
		return Predicate{}, nonExistentField(ident.Name)
	}

	switch spec.Kind {
	case task.KindString:
		if op != PredEqual {
			return Predicate{}, formatError(ident.Name + " = ..")
		}
		value, ok := stringOperand(e.Right)
		if !ok {
			return Predicate{}, formatError(shapeString)
		}
		return Predicate{Field: spec, Op: op, Value: task.StringValue(value)}, nil

	case task.KindBoolean:
		if op != PredEqual {
			return Predicate{}, formatError(ident.Name + " = ..")
		}
		lit, ok := e.Right.(*BoolLit)
		if !ok {
			return Predicate{}, formatError(shapeBool)
		}
		return Predicate{Field: spec, Op: op, Value: task.BoolValue(lit.Value)}, nil

	case task.KindTimestamp:
		raw, ok := stringOperand(e.Right)
		if !ok {
			return Predicate{}, formatError(shapeDate)
		}
		date, err := task.ParseDate(raw)
		if err != nil {
			return Predicate{}, formatError(shapeDate)
		}
		return Predicate{Field: spec, Op: op, Value: task.DateValue(date)}, nil
	}

	return Predicate{}, nonExistentField(ident.Name)
}

func compileLike(e *LikeExpr) (Predicate, error) {
	if e.Negated {
		return Predicate{}, unhandledOperator(OpNotLike)
	}

	ident, ok := e.Expr.(*Ident)
	if !ok {
		return Predicate{}, formatError(shapeLikeField)
	}
	spec, known := task.LookupField(ident.Name)
	if !known || !spec.IsText() {
		return Predicate{}, formatError(shapeLikeField)
	}

	pattern, ok := stringOperand(e.Pattern)
	if !ok {
		return Predicate{}, formatError(shapeLikePattern)
	}
	return Predicate{Field: spec, Op: PredContains, Value: task.StringValue(pattern)}, nil
}

// stringOperand accepts 'single quoted' strings and "double quoted" identifiers.
func stringOperand(e Expr) (string, bool) {
	switch v := e.(type) {
	case *StringLit:
		return v.Value, true
	case *Ident:
		if v.Quoted {
			return v.Name, true
		}
	}
	return "", false
}
