package audit_test

import (
	"fmt"
	"testing"

	"designaudit/domain/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeNaming_AllRulesTriggered(t *testing.T) {
	records := []audit.ComponentRecord{
		{ID: "1:1", Name: "Nav Bar_Item", Type: audit.TypeComponent},
	}

	report := audit.AnalyzeNaming(records)

	require.Len(t, report.Issues, 1)
	issue := report.Issues[0]
	assert.Equal(t, "1:1", issue.ID)
	assert.Equal(t, "Nav Bar_Item", issue.Name)
	assert.Equal(t, []string{
		"Contains uppercase letters",
		"Contains spaces",
		"Uses underscores instead of hyphens",
		"Not in kebab-case format",
	}, issue.Issues)
	assert.Equal(t, "nav-baritem", issue.Suggestion)
}

func TestAnalyzeNaming_RuleIndependence(t *testing.T) {
	testCases := []struct {
		name           string
		componentName  string
		expectedIssues []string
	}{
		{
			name:          "Uppercase only",
			componentName: "navBar",
			expectedIssues: []string{
				"Contains uppercase letters",
				"Not in kebab-case format",
			},
		},
		{
			name:          "Spaces only",
			componentName: "nav bar",
			expectedIssues: []string{
				"Contains spaces",
				"Not in kebab-case format",
			},
		},
		{
			name:          "Underscores only",
			componentName: "nav_bar",
			expectedIssues: []string{
				"Uses underscores instead of hyphens",
				"Not in kebab-case format",
			},
		},
		{
			name:          "Double hyphen fails only the kebab rule",
			componentName: "nav--bar",
			expectedIssues: []string{
				"Not in kebab-case format",
			},
		},
		{
			name:          "Trailing hyphen fails only the kebab rule",
			componentName: "nav-bar-",
			expectedIssues: []string{
				"Not in kebab-case format",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := audit.AnalyzeNaming([]audit.ComponentRecord{
				{ID: "x", Name: tc.componentName},
			})

			require.Len(t, report.Issues, 1)
			assert.Equal(t, tc.expectedIssues, report.Issues[0].Issues)
		})
	}
}

func TestAnalyzeNaming_KebabCasePassThrough(t *testing.T) {
	report := audit.AnalyzeNaming([]audit.ComponentRecord{
		{ID: "1", Name: "nav-bar-item"},
		{ID: "2", Name: "button2"},
	})

	assert.Empty(t, report.Issues)
	assert.Equal(t, 2, report.TotalComponents)
	assert.Equal(t, 0, report.IssueCount)
	require.NotNil(t, report.ComplianceRate)
	assert.Equal(t, "100.0", *report.ComplianceRate)
}

func TestAnalyzeNaming_ComplianceRate(t *testing.T) {
	// 10 components, 3 flagged.
	records := make([]audit.ComponentRecord, 0, 10)
	for i := 0; i < 7; i++ {
		records = append(records, audit.ComponentRecord{
			ID:   fmt.Sprintf("ok-%d", i),
			Name: fmt.Sprintf("component-%d", i),
		})
	}
	records = append(records,
		audit.ComponentRecord{ID: "bad-1", Name: "Bad Name"},
		audit.ComponentRecord{ID: "bad-2", Name: "bad_name"},
		audit.ComponentRecord{ID: "bad-3", Name: "BadName"},
	)

	report := audit.AnalyzeNaming(records)

	assert.Equal(t, 10, report.TotalComponents)
	assert.Equal(t, 3, report.IssueCount)
	require.NotNil(t, report.ComplianceRate)
	assert.Equal(t, "70.0", *report.ComplianceRate)
}

func TestAnalyzeNaming_ZeroComponents(t *testing.T) {
	report := audit.AnalyzeNaming(nil)

	assert.Equal(t, 0, report.TotalComponents)
	assert.Equal(t, 0, report.IssueCount)
	assert.Nil(t, report.ComplianceRate)
	assert.Empty(t, report.Issues)
}

func TestAnalyzeNaming_MissingNameFallsBackToEmpty(t *testing.T) {
	// A node without a name decodes to the empty string; the analyzer must
	// flag it rather than misbehave.
	report := audit.AnalyzeNaming([]audit.ComponentRecord{{ID: "1"}})

	require.Len(t, report.Issues, 1)
	assert.Equal(t, []string{"Not in kebab-case format"}, report.Issues[0].Issues)
	assert.Equal(t, "", report.Issues[0].Suggestion)
}

func TestSuggestName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Mixed case with space and underscore", input: "Nav Bar_Item", expected: "nav-baritem"},
		{name: "Whitespace run collapses to one hyphen", input: "Primary   Button", expected: "primary-button"},
		{name: "Already kebab-case", input: "nav-bar", expected: "nav-bar"},
		{name: "Symbols stripped", input: "Icon (24px)", expected: "icon-24px"},
		{name: "Leading space keeps leading hyphen", input: " button", expected: "-button"},
		{name: "Hyphen plus space survives as double hyphen", input: "nav- bar", expected: "nav--bar"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, audit.SuggestName(tc.input))
		})
	}
}
