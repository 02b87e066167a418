package api

import (
	"math"
	"testing"

	"rewardsadmin/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexedFormArray(t *testing.T) {
	testCases := []struct {
		name     string
		form     map[string][]string
		expected []string
	}{
		{
			name:     "InOrder",
			form:     map[string][]string{"terms[0]": {"a"}, "terms[1]": {"b"}},
			expected: []string{"a", "b"},
		},
		{
			name:     "GapIsCompactedAfterPlacement",
			form:     map[string][]string{"terms[2]": {"c"}, "terms[0]": {"a"}},
			expected: []string{"a", "c"},
		},
		{
			name:     "NumericNotLexicalOrder",
			form:     map[string][]string{"terms[10]": {"k"}, "terms[2]": {"c"}, "terms[1]": {"b"}},
			expected: []string{"b", "c", "k"},
		},
		{
			name:     "BlankEntriesDropped",
			form:     map[string][]string{"terms[0]": {""}, "terms[1]": {"  "}, "terms[2]": {"x"}},
			expected: []string{"x"},
		},
		{
			name:     "OtherFieldsIgnored",
			form:     map[string][]string{"terms": {"plain"}, "howToAvail[0]": {"h"}, "terms[x]": {"bad"}, "myterms[0]": {"no"}},
			expected: []string{},
		},
		{
			name:     "Empty",
			form:     map[string][]string{},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, indexedFormArray(tc.form, "terms"))
		})
	}
}

func TestParseNumbersOrZero(t *testing.T) {
	assert.Equal(t, 12.5, parseFloatOrZero("12.5"))
	assert.Equal(t, 3.0, parseFloatOrZero(" 3 "))
	assert.Equal(t, 0.0, parseFloatOrZero(""))
	assert.Equal(t, 0.0, parseFloatOrZero("abc"))
	assert.Equal(t, 0.0, parseFloatOrZero("NaN"))
	assert.Equal(t, 0.0, parseFloatOrZero("Inf"))

	assert.Equal(t, 42, parseIntOrZero("42"))
	assert.Equal(t, 7, parseIntOrZero("7.9"))
	assert.Equal(t, 0, parseIntOrZero(""))
	assert.Equal(t, 0, parseIntOrZero("ten"))
	assert.Equal(t, 0, parseIntOrZero("1e20"))
	assert.Equal(t, -7, parseIntOrZero("-7.9"))
	assert.Equal(t, math.MaxInt32, parseIntOrZero("2147483647"))
	assert.Equal(t, math.MaxInt32, parseIntOrZero("2147483647.5"))

	// Integer and decimal input share one range.
	assert.Equal(t, 0, parseIntOrZero("3000000000"))
	assert.Equal(t, 0, parseIntOrZero("3000000000.5"))
	assert.Equal(t, 0, parseIntOrZero("-3000000000"))
}

func TestReadList_Policy(t *testing.T) {
	store := db.NewStore(t.TempDir(), "things", false)
	writeResourceFile(t, store, "not json")

	masked, err := readList[map[string]any](store, listPolicy{maskReadErrors: true})
	require.NoError(t, err)
	assert.NotNil(t, masked)
	assert.Empty(t, masked)

	_, err = readList[map[string]any](store, listPolicy{maskReadErrors: false})
	assert.ErrorIs(t, err, db.ErrParse)
}

func TestListPolicies(t *testing.T) {
	assert.False(t, brandsListPolicy.maskReadErrors)
	assert.False(t, vouchersListPolicy.maskReadErrors)
	assert.True(t, couponsListPolicy.maskReadErrors)
}
