package filter

import (
	"github.com/krew-solutions/searchfilter-go/searchfilter/option"
)

// Direction is the requested sort order.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// DefaultIDField is the document identifier field used for stable
// tie-breaking when no other field is configured.
const DefaultIDField = "id"

// Statement is an ordered OR-group of queries: a document matches the
// statement when it matches at least one of them.
type Statement struct {
	queries []*Query
}

func NewStatement(queries ...*Query) Statement {
	return Statement{queries: queries}
}

func (s Statement) Queries() []*Query {
	return s.queries
}

// Filter is the top-level expression: statements are ANDed together,
// queries within a statement are ORed, plus sort and pagination directives.
// Filters are immutable once built.
type Filter struct {
	statements  []Statement
	sortFieldID string
	sortSubProp option.Option[string]
	sortSubID   option.Option[string]
	direction   Direction
	limit       int
}

func (f *Filter) Statements() []Statement {
	return f.statements
}

func (f *Filter) SortFieldID() string {
	return f.sortFieldID
}

// SortFieldSubProp is the property of the matching nested element to sort
// by, present only for nested-collection sorts.
func (f *Filter) SortFieldSubProp() option.Option[string] {
	return f.sortSubProp
}

// SortFieldSubID identifies which element of the nested collection supplies
// the sort value.
func (f *Filter) SortFieldSubID() option.Option[string] {
	return f.sortSubID
}

func (f *Filter) SortDirection() Direction {
	return f.direction
}

func (f *Filter) Limit() int {
	return f.limit
}
