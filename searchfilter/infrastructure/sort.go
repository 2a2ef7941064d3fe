package elastic

import (
	filter "github.com/krew-solutions/searchfilter-go/searchfilter/domain"
)

// buildSort produces the ordered sort clauses. The identifier tie-break
// clause is always last so pagination stays deterministic when the primary
// sort key has duplicate values; comparison itself is left to the engine's
// native ordering for the field's indexed type.
func (t *Translator) buildSort(f *filter.Filter) []any {
	dir := directionKeyword(f.SortDirection())
	tieBreak := map[string]any{
		t.idField: map[string]any{"order": dir},
	}

	field := f.SortFieldID()
	if field == "" || field == t.idField {
		return []any{tieBreak}
	}
	mapped := t.resolveField(field)

	var primary map[string]any
	subProp, subID := f.SortFieldSubProp(), f.SortFieldSubID()
	if subProp.IsSome() && subID.IsSome() {
		// Sort by the value of the one nested element selected by its id.
		primary = map[string]any{
			mapped + "." + subProp.Unwrap(): map[string]any{
				"order":         dir,
				"missing":       "_last",
				"nested_path":   mapped,
				"nested_filter": termClause(mapped+".id", subID.Unwrap()),
			},
		}
	} else {
		primary = map[string]any{
			mapped: map[string]any{
				"order":   dir,
				"missing": "_last",
			},
		}
	}
	return []any{primary, tieBreak}
}

func directionKeyword(d filter.Direction) string {
	if d == filter.DESC {
		return "desc"
	}
	return "asc"
}
