package testutils

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactDocs(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	docs := NewContactDocs(5, start)
	require.Len(t, docs, 5)

	t.Run("ids are unique and follow creation order", func(t *testing.T) {
		ids := make([]string, len(docs))
		seen := map[string]bool{}
		for i, doc := range docs {
			id := doc["id"].(string)
			ids[i] = id
			assert.False(t, seen[id])
			seen[id] = true
		}
		assert.True(t, sort.StringsAreSorted(ids))
	})

	t.Run("createdAt values are distinct and one day apart", func(t *testing.T) {
		for i, doc := range docs {
			created := doc["createdAt"].(time.Time)
			assert.Equal(t, start.AddDate(0, 0, i), created)
		}
	})

	t.Run("documents carry a nested custom field", func(t *testing.T) {
		for _, doc := range docs {
			require.Contains(t, doc, "customFields")
		}
	})
}

func TestJSONDiff(t *testing.T) {
	t.Run("equal values diff clean", func(t *testing.T) {
		a := map[string]any{"size": 10}
		diff, err := JSONDiff(a, map[string]any{"size": 10})
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"size\": 10\n}", diff)
	})

	t.Run("mismatch shows both sides", func(t *testing.T) {
		diff, err := JSONDiff(map[string]any{"size": 10}, map[string]any{"size": 50})
		require.NoError(t, err)
		assert.Contains(t, diff, "10")
		assert.Contains(t, diff, "50")
	})
}
