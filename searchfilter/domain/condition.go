package filter

import (
	"fmt"
	"strings"

	"github.com/krew-solutions/searchfilter-go/searchfilter/domain/operators"
)

// Condition pairs an operator with the value shape that operator expects:
// a scalar or nil for EQ/NEQ, a scalar or RelativeDate for the range
// operators, a string for PREFIX, sub-conditions for ALL/ANY and a nested
// *Query for FIND/NFIND. The shape is fully determined by the operator.
type Condition struct {
	op    operators.Operator
	value any
}

func NewCondition(op operators.Operator, value any) Condition {
	return Condition{op: op, value: value}
}

func (c Condition) Operator() operators.Operator {
	return c.op
}

func (c Condition) Value() any {
	return c.value
}

// String renders the condition for diagnostics, recursing into
// sub-conditions and nested queries.
func (c Condition) String() string {
	switch v := c.value.(type) {
	case []Condition:
		parts := make([]string, len(v))
		for i := range v {
			parts[i] = v[i].String()
		}
		return fmt.Sprintf("%s[%s]", c.op, strings.Join(parts, ", "))
	case *Query:
		return fmt.Sprintf("%s(%s)", c.op, v)
	default:
		return fmt.Sprintf("%s(%v)", c.op, c.value)
	}
}

// RelativeDate describes a point in time a number of days before "now".
// Consumers floor the resolved instant to day granularity.
type RelativeDate struct {
	Days int
}

// DaysAgo builds a relative-date descriptor for range conditions.
func DaysAgo(n int) RelativeDate {
	return RelativeDate{Days: n}
}

func Eq(value any) Condition {
	return NewCondition(operators.OperatorEq, value)
}

func Neq(value any) Condition {
	return NewCondition(operators.OperatorNeq, value)
}

func Lt(value any) Condition {
	return NewCondition(operators.OperatorLt, value)
}

func Lte(value any) Condition {
	return NewCondition(operators.OperatorLte, value)
}

func Gt(value any) Condition {
	return NewCondition(operators.OperatorGt, value)
}

func Gte(value any) Condition {
	return NewCondition(operators.OperatorGte, value)
}

func Prefix(value string) Condition {
	return NewCondition(operators.OperatorPrefix, value)
}

// All requires every sub-condition to hold on the same field.
func All(conditions ...Condition) Condition {
	return NewCondition(operators.OperatorAll, conditions)
}

// Any requires at least one sub-condition to hold on the same field.
// Any() with no sub-conditions matches nothing.
func Any(conditions ...Condition) Condition {
	return NewCondition(operators.OperatorAny, conditions)
}

// Find requires at least one element of the nested collection at the field
// to match the query.
func Find(query *Query) Condition {
	return NewCondition(operators.OperatorFind, query)
}

// NotFind requires that no element of the nested collection at the field
// matches the query.
func NotFind(query *Query) Condition {
	return NewCondition(operators.OperatorNotFind, query)
}
