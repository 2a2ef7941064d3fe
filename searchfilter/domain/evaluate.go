package filter

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/krew-solutions/searchfilter-go/searchfilter/domain/operators"
)

// Document is a JSON-like record the in-memory evaluator runs filters
// against. Nested collections are []Document or []any of map values.
type Document map[string]any

// Matches reports whether doc satisfies every statement of the filter.
// Relative dates are resolved against now, floored to day granularity.
// A missing field is treated as null.
func Matches(f *Filter, doc Document, now time.Time) (bool, error) {
	for _, st := range f.Statements() {
		ok, err := matchStatement(st, doc, now)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func matchStatement(st Statement, doc Document, now time.Time) (bool, error) {
	queries := st.Queries()
	if len(queries) == 0 {
		return true, nil
	}
	for _, q := range queries {
		ok, err := matchQuery(q, doc, now)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func matchQuery(q *Query, doc Document, now time.Time) (bool, error) {
	for _, p := range q.Pairs() {
		ok, err := matchCondition(doc, p.Field, p.Condition, now)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func matchCondition(doc Document, field string, c Condition, now time.Time) (bool, error) {
	value := lookupPath(doc, field)
	switch c.Operator() {
	case operators.OperatorEq:
		if c.Value() == nil {
			return value == nil, nil
		}
		return equalValues(value, c.Value()), nil

	case operators.OperatorNeq:
		if c.Value() == nil {
			return value != nil, nil
		}
		return !equalValues(value, c.Value()), nil

	case operators.OperatorLt, operators.OperatorLte, operators.OperatorGt, operators.OperatorGte:
		if value == nil {
			return false, nil
		}
		return defaultRegistry.Eval(c.Operator(), value, resolveRelative(c.Value(), now))

	case operators.OperatorAll:
		subs, err := subConditions(c)
		if err != nil {
			return false, err
		}
		for _, sub := range subs {
			ok, err := matchCondition(doc, field, sub, now)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil

	case operators.OperatorAny:
		subs, err := subConditions(c)
		if err != nil {
			return false, err
		}
		for _, sub := range subs {
			ok, err := matchCondition(doc, field, sub, now)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil

	case operators.OperatorPrefix:
		s, ok := value.(string)
		if !ok {
			return false, nil
		}
		prefix, ok := c.Value().(string)
		if !ok {
			return false, fmt.Errorf("field %q: PREFIX value is %T, want string", field, c.Value())
		}
		return strings.HasPrefix(s, prefix), nil

	case operators.OperatorFind:
		return matchNested(value, c, now, false)

	case operators.OperatorNotFind:
		return matchNested(value, c, now, true)
	}
	return false, fmt.Errorf("unsupported operator %q in condition %s on field %q", c.Operator(), c, field)
}

// matchNested evaluates the nested query against every element of the
// collection. FIND matches when at least one element matches; NFIND when
// none does, including the empty or absent collection.
func matchNested(value any, c Condition, now time.Time, negate bool) (bool, error) {
	q, ok := c.Value().(*Query)
	if !ok || q == nil {
		return false, fmt.Errorf("condition %s carries %T, want a nested query", c, c.Value())
	}
	for _, elem := range nestedDocs(value) {
		ok, err := matchQuery(q, elem, now)
		if err != nil {
			return false, err
		}
		if ok {
			return !negate, nil
		}
	}
	return negate, nil
}

func nestedDocs(value any) []Document {
	switch v := value.(type) {
	case []Document:
		return v
	case []any:
		docs := make([]Document, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				docs = append(docs, Document(m))
			}
		}
		return docs
	case []map[string]any:
		docs := make([]Document, 0, len(v))
		for _, item := range v {
			docs = append(docs, Document(item))
		}
		return docs
	}
	return nil
}

func subConditions(c Condition) ([]Condition, error) {
	subs, ok := c.Value().([]Condition)
	if !ok {
		return nil, fmt.Errorf("condition %s carries %T, want sub-conditions", c, c.Value())
	}
	return subs, nil
}

// lookupPath resolves a dotted field path through nested maps. A missing
// segment yields nil.
func lookupPath(doc Document, path string) any {
	segments := strings.Split(path, ".")
	var current any = map[string]any(doc)
	for _, seg := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			if d, okDoc := current.(Document); okDoc {
				m = map[string]any(d)
			} else {
				return nil
			}
		}
		current, ok = m[seg]
		if !ok {
			return nil
		}
	}
	return current
}

var defaultRegistry = operators.NewDefaultRegistry()

func resolveRelative(value any, now time.Time) any {
	rd, ok := value.(RelativeDate)
	if !ok {
		return value
	}
	d := now.AddDate(0, 0, -rd.Days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

func equalValues(left, right any) bool {
	if lt, ok := left.(time.Time); ok {
		if rt, ok := right.(time.Time); ok {
			return lt.Equal(rt)
		}
	}
	if c, err := defaultRegistry.Compare(left, right); err == nil {
		return c == 0
	}
	return reflect.DeepEqual(left, right)
}

// Apply runs the filter against an in-memory list: match, sort (primary
// key first with missing values last, identifier tie-break) and truncate
// to the limit. It is the reference for what the translated query asks the
// search engine to do.
func Apply(f *Filter, docs []Document, now time.Time) ([]Document, error) {
	matched := make([]Document, 0, len(docs))
	for _, doc := range docs {
		ok, err := Matches(f, doc, now)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, doc)
		}
	}

	desc := f.SortDirection() == DESC
	primary := f.SortFieldID() != "" && f.SortFieldID() != DefaultIDField
	sort.SliceStable(matched, func(i, j int) bool {
		if primary {
			vi, oki := sortKey(matched[i], f)
			vj, okj := sortKey(matched[j], f)
			switch {
			case oki && !okj:
				return true // missing values sort last
			case !oki && okj:
				return false
			case oki && okj:
				if c, err := defaultRegistry.Compare(vi, vj); err == nil && c != 0 {
					if desc {
						return c > 0
					}
					return c < 0
				}
			}
		}
		ci, erri := defaultRegistry.Compare(matched[i][DefaultIDField], matched[j][DefaultIDField])
		if erri != nil {
			return false
		}
		if desc {
			return ci > 0
		}
		return ci < 0
	})

	if f.Limit() < len(matched) {
		matched = matched[:f.Limit()]
	}
	return matched, nil
}

func sortKey(doc Document, f *Filter) (any, bool) {
	subProp, subID := f.SortFieldSubProp(), f.SortFieldSubID()
	if subProp.IsSome() && subID.IsSome() {
		for _, elem := range nestedDocs(doc[f.SortFieldID()]) {
			if equalValues(elem[DefaultIDField], subID.Unwrap()) {
				v, ok := elem[subProp.Unwrap()]
				return v, ok && v != nil
			}
		}
		return nil, false
	}
	v := lookupPath(doc, f.SortFieldID())
	return v, v != nil
}
