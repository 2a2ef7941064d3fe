// Package elastic translates filter expressions into the boolean query DSL
// of an Elasticsearch-compatible search engine. The produced document is
// the literal request body: query, size and sort.
package elastic

import (
	filter "github.com/krew-solutions/searchfilter-go/searchfilter/domain"
)

// FieldMapper rewrites a logical field path to its physical (indexed)
// path. It must be a pure function; an empty result falls back to the
// original path.
type FieldMapper func(fieldID string) string

// IdentityMapper maps every field to itself.
func IdentityMapper(fieldID string) string {
	return fieldID
}

const (
	// DefaultIDField is the identifier used for the sort tie-break clause.
	DefaultIDField = filter.DefaultIDField

	// DefaultMaxDepth bounds recursion over untrusted condition trees.
	DefaultMaxDepth = 32
)

type TranslatorOption func(*Translator)

// WithFieldMapper sets the logical-to-physical field mapping.
func WithFieldMapper(fn FieldMapper) TranslatorOption {
	return func(t *Translator) {
		t.mapField = fn
	}
}

// WithIDField sets the document identifier field used for tie-breaking.
func WithIDField(field string) TranslatorOption {
	return func(t *Translator) {
		t.idField = field
	}
}

// WithMaxDepth sets the recursion bound for nested condition trees.
func WithMaxDepth(depth int) TranslatorOption {
	return func(t *Translator) {
		t.maxDepth = depth
	}
}

// Translator is stateless across calls and safe for concurrent use as long
// as its FieldMapper is pure.
type Translator struct {
	mapField FieldMapper
	idField  string
	maxDepth int
}

func NewTranslator(opts ...TranslatorOption) *Translator {
	t := &Translator{
		mapField: IdentityMapper,
		idField:  DefaultIDField,
		maxDepth: DefaultMaxDepth,
	}
	for i := range opts {
		opts[i](t)
	}
	return t
}

// Translate builds the full search request body for the filter.
func (t *Translator) Translate(f *filter.Filter) (map[string]any, error) {
	query, err := t.parseStatements(f.Statements())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"query": query,
		"size":  f.Limit(),
		"sort":  t.buildSort(f),
	}, nil
}

// resolveField applies the field mapping with fallback to the original id.
func (t *Translator) resolveField(fieldID string) string {
	if mapped := t.mapField(fieldID); mapped != "" {
		return mapped
	}
	return fieldID
}
