package filter

import (
	"github.com/krew-solutions/searchfilter-go/searchfilter/option"
)

// DefaultLimit is the result-size limit applied when the caller sets none.
const DefaultLimit = 10

// Builder accumulates alternating and/or groups: Where adds a condition to
// the current query, Or starts a sibling query in the current statement
// (OR), And closes the current statement and starts a new one (AND).
type Builder struct {
	statements  []Statement
	pending     []*Query
	current     *Query
	sortFieldID string
	sortSubProp option.Option[string]
	sortSubID   option.Option[string]
	direction   Direction
	limit       int
}

func New() *Builder {
	return &Builder{
		current:   NewQuery(),
		direction: ASC,
		limit:     DefaultLimit,
	}
}

// Where adds a condition on a field to the current query.
func (b *Builder) Where(field string, c Condition) *Builder {
	b.current.Where(field, c)
	return b
}

// Or closes the current query and starts a sibling one in the same
// statement.
func (b *Builder) Or() *Builder {
	b.flushQuery()
	return b
}

// And closes the current statement and starts a new one.
func (b *Builder) And() *Builder {
	b.flushQuery()
	b.flushStatement()
	return b
}

// SortBy requests ordering by a field.
func (b *Builder) SortBy(field string, dir Direction) *Builder {
	b.sortFieldID = field
	b.sortSubProp = option.Nothing[string]()
	b.sortSubID = option.Nothing[string]()
	b.direction = dir
	return b
}

// SortByNested requests ordering by subProp of the element of the nested
// collection at field whose id equals subID.
func (b *Builder) SortByNested(field, subProp, subID string, dir Direction) *Builder {
	b.sortFieldID = field
	b.sortSubProp = option.Some(subProp)
	b.sortSubID = option.Some(subID)
	b.direction = dir
	return b
}

// Limit caps the number of results.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Build validates the accumulated filter and returns it.
func (b *Builder) Build() (*Filter, error) {
	b.flushQuery()
	b.flushStatement()
	f := &Filter{
		statements:  b.statements,
		sortFieldID: b.sortFieldID,
		sortSubProp: b.sortSubProp,
		sortSubID:   b.sortSubID,
		direction:   b.direction,
		limit:       b.limit,
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (b *Builder) flushQuery() {
	if b.current.Len() > 0 {
		b.pending = append(b.pending, b.current)
	}
	b.current = NewQuery()
}

func (b *Builder) flushStatement() {
	if len(b.pending) > 0 {
		b.statements = append(b.statements, NewStatement(b.pending...))
	}
	b.pending = nil
}
