package elastic

import (
	filter "github.com/krew-solutions/searchfilter-go/searchfilter/domain"
	"github.com/krew-solutions/searchfilter-go/searchfilter/utils/mergemap"
)

// assembleQuery translates every field/condition pair and deep-merges the
// fragments into one bool query. Several conditions on the same field
// compose conjunctively through the merge. A non-empty prefix scopes every
// field under a nested path before mapping.
func (t *Translator) assembleQuery(q *filter.Query, prefix string, depth int) (map[string]any, error) {
	fragments, err := filter.Map(q, func(field string, c filter.Condition) (map[string]any, error) {
		if prefix != "" {
			field = prefix + "." + field
		}
		return t.translateCondition(field, c, depth)
	})
	if err != nil {
		return nil, err
	}
	merged := map[string]any{}
	for _, frag := range fragments {
		merged = mergemap.Merge(merged, frag)
	}
	return map[string]any{"bool": merged}, nil
}

// parseStatements implements "groups of OR, ANDed together": queries within
// a statement combine with should/minimum_should_match, statements combine
// with filter. Single elements pass through unwrapped at both levels.
func (t *Translator) parseStatements(statements []filter.Statement) (map[string]any, error) {
	parts := make([]any, 0, len(statements))
	for _, st := range statements {
		queries := st.Queries()
		assembled := make([]any, 0, len(queries))
		for _, q := range queries {
			aq, err := t.assembleQuery(q, "", 0)
			if err != nil {
				return nil, err
			}
			assembled = append(assembled, aq)
		}
		switch len(assembled) {
		case 0:
			continue
		case 1:
			parts = append(parts, assembled[0])
		default:
			parts = append(parts, map[string]any{
				"bool": map[string]any{
					"minimum_should_match": 1,
					"should":               assembled,
				},
			})
		}
	}
	switch len(parts) {
	case 0:
		return map[string]any{"bool": map[string]any{}}, nil
	case 1:
		return parts[0].(map[string]any), nil
	default:
		return map[string]any{
			"bool": map[string]any{"filter": parts},
		}, nil
	}
}
