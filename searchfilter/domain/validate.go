package filter

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/searchfilter-go/searchfilter/domain/operators"
)

// Validate checks that every condition value matches the shape its operator
// expects and that the sort and pagination directives are sane. All
// violations are reported together.
func (f *Filter) Validate() error {
	var result *multierror.Error
	if f.limit <= 0 {
		result = multierror.Append(result, fmt.Errorf("limit must be positive, got %d", f.limit))
	}
	if f.direction != ASC && f.direction != DESC {
		result = multierror.Append(result, fmt.Errorf("sort direction must be ASC or DESC, got %q", f.direction))
	}
	if f.sortSubProp.IsSome() != f.sortSubID.IsSome() {
		result = multierror.Append(result, fmt.Errorf("nested sort requires both a sub-property and a sub-id"))
	}
	for _, st := range f.statements {
		for _, q := range st.Queries() {
			for _, p := range q.Pairs() {
				if err := validateCondition(p.Field, p.Condition); err != nil {
					result = multierror.Append(result, err)
				}
			}
		}
	}
	return result.ErrorOrNil()
}

func validateCondition(field string, c Condition) error {
	op := c.Operator()
	value := c.Value()
	switch op {
	case operators.OperatorEq, operators.OperatorNeq:
		switch value.(type) {
		case []Condition, *Query, RelativeDate:
			return fmt.Errorf("field %q: %s expects a scalar or null, got %T", field, op, value)
		}
		return nil
	case operators.OperatorLt, operators.OperatorLte, operators.OperatorGt, operators.OperatorGte:
		if !rangeComparable(value) {
			return fmt.Errorf("field %q: %s expects a scalar or relative date, got %T", field, op, value)
		}
		return nil
	case operators.OperatorPrefix:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field %q: PREFIX expects a string, got %T", field, value)
		}
		return nil
	case operators.OperatorAll, operators.OperatorAny:
		subs, ok := value.([]Condition)
		if !ok {
			return fmt.Errorf("field %q: %s expects sub-conditions, got %T", field, op, value)
		}
		var result *multierror.Error
		for _, sub := range subs {
			if err := validateCondition(field, sub); err != nil {
				result = multierror.Append(result, err)
			}
		}
		return result.ErrorOrNil()
	case operators.OperatorFind, operators.OperatorNotFind:
		q, ok := value.(*Query)
		if !ok || q == nil {
			return fmt.Errorf("field %q: %s expects a nested query, got %T", field, op, value)
		}
		var result *multierror.Error
		for _, p := range q.Pairs() {
			if err := validateCondition(field+"."+p.Field, p.Condition); err != nil {
				result = multierror.Append(result, err)
			}
		}
		return result.ErrorOrNil()
	default:
		return fmt.Errorf("field %q: unknown operator in condition %s", field, c)
	}
}

// rangeComparable lists the scalar types accepted by range conditions; kept
// here so validation and the in-memory evaluator agree on the boundary.
func rangeComparable(value any) bool {
	switch value.(type) {
	case string, time.Time, RelativeDate,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
