package audit_test

import (
	"testing"

	"designaudit/domain/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func components(names ...string) []audit.ComponentRecord {
	records := make([]audit.ComponentRecord, 0, len(names))
	for i, name := range names {
		records = append(records, audit.ComponentRecord{
			ID:   string(rune('a' + i)),
			Name: name,
			Type: audit.TypeComponent,
		})
	}
	return records
}

func TestSearchComponents_CaseInsensitive(t *testing.T) {
	records := components("Button/Primary", "button/secondary", "Card", "nav-bar")

	testCases := []struct {
		name     string
		term     string
		expected []string
	}{
		{
			name:     "Lowercase term matches mixed case names",
			term:     "button",
			expected: []string{"Button/Primary", "button/secondary"},
		},
		{
			name:     "Uppercase term matches the same set",
			term:     "BUTTON",
			expected: []string{"Button/Primary", "button/secondary"},
		},
		{
			name:     "Substring in the middle",
			term:     "ar",
			expected: []string{"Button/Primary", "Card", "nav-bar"},
		},
		{
			name:     "No matches",
			term:     "modal",
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			matches := audit.SearchComponents(records, tc.term)

			names := make([]string, 0, len(matches))
			for _, match := range matches {
				names = append(names, match.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}
}

func TestSearchComponents_EmptyTermMatchesEverything(t *testing.T) {
	records := components("button", "card", "nav-bar")

	matches := audit.SearchComponents(records, "")

	assert.Equal(t, records, matches)
}

func TestSearchComponents_PreservesOrderAndDuplicates(t *testing.T) {
	records := []audit.ComponentRecord{
		{ID: "1", Name: "icon"},
		{ID: "2", Name: "icon"},
		{ID: "3", Name: "icon/star"},
	}

	matches := audit.SearchComponents(records, "icon")

	require.Len(t, matches, 3)
	assert.Equal(t, "1", matches[0].ID)
	assert.Equal(t, "2", matches[1].ID)
	assert.Equal(t, "3", matches[2].ID)
}

func TestSearchComponents_EmptyInput(t *testing.T) {
	matches := audit.SearchComponents(nil, "button")

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}
