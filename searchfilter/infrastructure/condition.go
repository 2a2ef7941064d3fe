package elastic

import (
	"fmt"

	"github.com/pkg/errors"

	filter "github.com/krew-solutions/searchfilter-go/searchfilter/domain"
	"github.com/krew-solutions/searchfilter-go/searchfilter/domain/operators"
	"github.com/krew-solutions/searchfilter-go/searchfilter/utils/mergemap"
)

// ErrUnsupportedOperator marks a condition whose operator the translator
// does not recognize. This is a configuration error and fails the whole
// translation.
var ErrUnsupportedOperator = errors.New("unsupported operator")

var rangeKeywords = map[operators.Operator]string{
	operators.OperatorLt:  "lt",
	operators.OperatorLte: "lte",
	operators.OperatorGt:  "gt",
	operators.OperatorGte: "gte",
}

// translateCondition maps the field exactly once, then dispatches on the
// operator. Fragments carry only "filter" and "must_not" keys, each an
// ordered clause list, so that mergemap.Merge composes them with AND
// semantics.
func (t *Translator) translateCondition(fieldID string, c filter.Condition, depth int) (map[string]any, error) {
	return t.translateMapped(t.resolveField(fieldID), c, depth)
}

// translateMapped works on an already-mapped field id. Sub-conditions of
// ALL/ANY target the same mapped field and must not be mapped again.
func (t *Translator) translateMapped(mapped string, c filter.Condition, depth int) (map[string]any, error) {
	if depth > t.maxDepth {
		return nil, errors.Errorf("condition tree exceeds maximum depth %d at field %q", t.maxDepth, mapped)
	}

	switch c.Operator() {
	case operators.OperatorEq:
		if c.Value() == nil {
			return mustNotFragment(existsClause(mapped)), nil
		}
		return filterFragment(termClause(mapped, c.Value())), nil

	case operators.OperatorNeq:
		if c.Value() == nil {
			return filterFragment(existsClause(mapped)), nil
		}
		return mustNotFragment(termClause(mapped, c.Value())), nil

	case operators.OperatorLt, operators.OperatorLte, operators.OperatorGt, operators.OperatorGte:
		// Relative-day operators are not flipped: for date-ago semantics the
		// caller picks the operator, since a larger offset is an earlier date.
		return filterFragment(rangeClause(mapped, c.Operator(), resolveRangeValue(c.Value()))), nil

	case operators.OperatorAll:
		return t.translateAll(mapped, c, depth)

	case operators.OperatorAny:
		return t.translateAny(mapped, c, depth)

	case operators.OperatorPrefix:
		return filterFragment(prefixClause(mapped, c.Value())), nil

	case operators.OperatorFind:
		nested, err := t.nestedClause(mapped, c, depth)
		if err != nil {
			return nil, err
		}
		return filterFragment(nested), nil

	case operators.OperatorNotFind:
		nested, err := t.nestedClause(mapped, c, depth)
		if err != nil {
			return nil, err
		}
		return mustNotFragment(nested), nil
	}

	return nil, errors.Wrapf(ErrUnsupportedOperator, "field %q, condition %s", mapped, c)
}

// translateAll folds the sub-conditions into one fragment: filters
// intersect and must_nots intersect.
func (t *Translator) translateAll(mapped string, c filter.Condition, depth int) (map[string]any, error) {
	subs, err := subConditions(c)
	if err != nil {
		return nil, err
	}
	merged := map[string]any{}
	for _, sub := range subs {
		frag, err := t.translateMapped(mapped, sub, depth+1)
		if err != nil {
			return nil, err
		}
		merged = mergemap.Merge(merged, frag)
	}
	return merged, nil
}

// translateAny combines the sub-fragments as dis_max alternatives. A
// sub-fragment carrying only filter entries contributes its clauses
// directly; anything bearing must_not becomes a nested bool clause so its
// negation survives.
func (t *Translator) translateAny(mapped string, c filter.Condition, depth int) (map[string]any, error) {
	subs, err := subConditions(c)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return map[string]any{"filter": []any{}}, nil
	}
	clauses := make([]any, 0, len(subs))
	for _, sub := range subs {
		frag, err := t.translateMapped(mapped, sub, depth+1)
		if err != nil {
			return nil, err
		}
		if onlyFilters(frag) {
			clauses = append(clauses, frag["filter"].([]any)...)
		} else {
			clauses = append(clauses, map[string]any{"bool": frag})
		}
	}
	return filterFragment(map[string]any{
		"dis_max": map[string]any{"queries": clauses},
	}), nil
}

// nestedClause assembles the nested query scoped under the mapped field as
// path prefix; every inner field reference is prefixed before mapping.
func (t *Translator) nestedClause(mapped string, c filter.Condition, depth int) (map[string]any, error) {
	q, ok := c.Value().(*filter.Query)
	if !ok || q == nil {
		return nil, errors.Errorf("field %q: condition %s carries %T, want a nested query", mapped, c, c.Value())
	}
	assembled, err := t.assembleQuery(q, mapped, depth+1)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"nested": map[string]any{
			"path":  mapped,
			"query": assembled,
		},
	}, nil
}

// onlyFilters reports whether the fragment carries filter entries and
// nothing else.
func onlyFilters(frag map[string]any) bool {
	if _, ok := frag["must_not"]; ok {
		return false
	}
	_, ok := frag["filter"]
	return ok && len(frag) == 1
}

func subConditions(c filter.Condition) ([]filter.Condition, error) {
	subs, ok := c.Value().([]filter.Condition)
	if !ok {
		return nil, errors.Errorf("condition %s carries %T, want sub-conditions", c, c.Value())
	}
	return subs, nil
}

// resolveRangeValue passes scalars through and renders a relative-date
// descriptor as the engine's date math, anchored at now and floored to day
// granularity.
func resolveRangeValue(value any) any {
	if rd, ok := value.(filter.RelativeDate); ok {
		return fmt.Sprintf("now-%dd/d", rd.Days)
	}
	return value
}

func filterFragment(clause any) map[string]any {
	return map[string]any{"filter": []any{clause}}
}

func mustNotFragment(clause any) map[string]any {
	return map[string]any{"must_not": []any{clause}}
}

func termClause(field string, value any) map[string]any {
	return map[string]any{"term": map[string]any{field: value}}
}

func existsClause(field string) map[string]any {
	return map[string]any{"exists": map[string]any{"field": field}}
}

func prefixClause(field string, value any) map[string]any {
	return map[string]any{"prefix": map[string]any{field: value}}
}

func rangeClause(field string, op operators.Operator, value any) map[string]any {
	return map[string]any{
		"range": map[string]any{
			field: map[string]any{rangeKeywords[op]: value},
		},
	}
}
