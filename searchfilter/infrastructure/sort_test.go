package elastic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filter "github.com/krew-solutions/searchfilter-go/searchfilter/domain"
)

func buildFilter(t *testing.T, b *filter.Builder) *filter.Filter {
	t.Helper()
	f, err := b.Build()
	require.NoError(t, err)
	return f
}

func TestBuildSort(t *testing.T) {
	tr := NewTranslator()

	t.Run("no sort field yields only the id tie-break", func(t *testing.T) {
		f := buildFilter(t, filter.New())
		assert.Equal(t, []any{
			map[string]any{"id": map[string]any{"order": "asc"}},
		}, tr.buildSort(f))
	})

	t.Run("sorting by the identifier does not duplicate it", func(t *testing.T) {
		f := buildFilter(t, filter.New().SortBy("id", filter.DESC))
		assert.Equal(t, []any{
			map[string]any{"id": map[string]any{"order": "desc"}},
		}, tr.buildSort(f))
	})

	t.Run("field sort precedes the tie-break and sorts missing last", func(t *testing.T) {
		f := buildFilter(t, filter.New().SortBy("createdAt", filter.ASC))
		assert.Equal(t, []any{
			map[string]any{"createdAt": map[string]any{"order": "asc", "missing": "_last"}},
			map[string]any{"id": map[string]any{"order": "asc"}},
		}, tr.buildSort(f))
	})

	t.Run("direction applies to both clauses", func(t *testing.T) {
		f := buildFilter(t, filter.New().SortBy("createdAt", filter.DESC))
		assert.Equal(t, []any{
			map[string]any{"createdAt": map[string]any{"order": "desc", "missing": "_last"}},
			map[string]any{"id": map[string]any{"order": "desc"}},
		}, tr.buildSort(f))
	})

	t.Run("nested sort targets the element selected by sub-id", func(t *testing.T) {
		f := buildFilter(t, filter.New().SortByNested("customFields", "value", "custom1", filter.ASC))
		assert.Equal(t, []any{
			map[string]any{"customFields.value": map[string]any{
				"order":       "asc",
				"missing":     "_last",
				"nested_path": "customFields",
				"nested_filter": map[string]any{
					"term": map[string]any{"customFields.id": "custom1"},
				},
			}},
			map[string]any{"id": map[string]any{"order": "asc"}},
		}, tr.buildSort(f))
	})

	t.Run("field mapping reaches sort clauses", func(t *testing.T) {
		mapped := NewTranslator(WithFieldMapper(func(fieldID string) string {
			if fieldID == "lastName" {
				return "lastName.keyword"
			}
			return fieldID
		}))
		f := buildFilter(t, filter.New().SortBy("lastName", filter.ASC))
		assert.Equal(t, []any{
			map[string]any{"lastName.keyword": map[string]any{"order": "asc", "missing": "_last"}},
			map[string]any{"id": map[string]any{"order": "asc"}},
		}, mapped.buildSort(f))
	})

	t.Run("custom identifier field", func(t *testing.T) {
		custom := NewTranslator(WithIDField("documentId"))
		f := buildFilter(t, filter.New().SortBy("documentId", filter.ASC))
		assert.Equal(t, []any{
			map[string]any{"documentId": map[string]any{"order": "asc"}},
		}, custom.buildSort(f))
	})
}
