package filter

import (
	"fmt"
	"strings"
)

// Pair is one field/condition entry of a Query. Field identifiers are
// opaque dotted paths; the same field may appear in several pairs.
type Pair struct {
	Field     string
	Condition Condition
}

// Query is an ordered collection of field/condition pairs, all of which
// must hold for the query to match.
type Query struct {
	pairs []Pair
}

func NewQuery() *Query {
	return &Query{}
}

// Where appends a condition on a field and returns the query for chaining.
func (q *Query) Where(field string, c Condition) *Query {
	q.pairs = append(q.pairs, Pair{Field: field, Condition: c})
	return q
}

func (q *Query) Pairs() []Pair {
	return q.pairs
}

func (q *Query) Len() int {
	return len(q.pairs)
}

func (q *Query) String() string {
	parts := make([]string, len(q.pairs))
	for i, p := range q.pairs {
		parts[i] = fmt.Sprintf("%s: %s", p.Field, p.Condition)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Map applies fn to every field/condition pair in insertion order and
// collects the results. The first error aborts the traversal.
func Map[T any](q *Query, fn func(field string, c Condition) (T, error)) ([]T, error) {
	results := make([]T, 0, len(q.pairs))
	for _, p := range q.pairs {
		r, err := fn(p.Field, p.Condition)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
