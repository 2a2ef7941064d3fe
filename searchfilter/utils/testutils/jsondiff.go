package testutils

import (
	"encoding/json"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// JSONDiff renders a character-level diff between the JSON forms of two
// values. Map keys marshal in sorted order, so equal structures diff empty.
func JSONDiff(expected, actual any) (string, error) {
	e, err := json.MarshalIndent(expected, "", "  ")
	if err != nil {
		return "", err
	}
	a, err := json.MarshalIndent(actual, "", "  ")
	if err != nil {
		return "", err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(e), string(a), false)
	return dmp.DiffPrettyText(diffs), nil
}

// AssertDocEqual compares two query documents and reports a readable diff
// on mismatch; plain testify output is unusable on deeply nested bodies.
func AssertDocEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if assert.ObjectsAreEqual(expected, actual) {
		return
	}
	diff, err := JSONDiff(expected, actual)
	require.NoError(t, err)
	t.Errorf("query document mismatch (expected vs actual):\n%s", diff)
}
