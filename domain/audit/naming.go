package audit

import (
	"fmt"
	"regexp"
	"strings"
)

// NamingIssue reports one component whose name violates at least one
// convention rule. Issues appear in rule-table order; Suggestion is a
// deterministic best-effort rewrite of the original name.
type NamingIssue struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Issues     []string `json:"issues"`
	Suggestion string   `json:"suggestion"`
}

// NamingReport aggregates the analysis over one component listing.
// ComplianceRate is rendered with one decimal place ("70.0"); it is nil
// when there are no components to audit, so the JSON value is null rather
// than a NaN artifact.
type NamingReport struct {
	TotalComponents int           `json:"totalComponents"`
	IssueCount      int           `json:"issueCount"`
	ComplianceRate  *string       `json:"complianceRate"`
	Issues          []NamingIssue `json:"issues"`
}

// namingRule pairs a predicate with the issue tag it emits. The rule set
// is a table so adding a convention is a data edit, not a new branch.
type namingRule struct {
	violates func(name string) bool
	issue    string
}

var (
	upperCasePattern  = regexp.MustCompile(`[A-Z]`)
	whitespacePattern = regexp.MustCompile(`\s`)
	underscorePattern = regexp.MustCompile(`_`)
	kebabCasePattern  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	whitespaceRunPattern = regexp.MustCompile(`\s+`)
	invalidRunePattern   = regexp.MustCompile(`[^a-z0-9-]`)
)

// namingRules is evaluated in order; a name can accumulate any subset of
// the four issues.
var namingRules = []namingRule{
	{violates: upperCasePattern.MatchString, issue: "Contains uppercase letters"},
	{violates: whitespacePattern.MatchString, issue: "Contains spaces"},
	{violates: underscorePattern.MatchString, issue: "Uses underscores instead of hyphens"},
	{violates: func(name string) bool { return !kebabCasePattern.MatchString(name) }, issue: "Not in kebab-case format"},
}

// AnalyzeNaming evaluates every component name against the convention rule
// table and reports the ones that violate at least one rule. Compliant
// components contribute to the compliance rate but are not listed.
func AnalyzeNaming(components []ComponentRecord) NamingReport {
	issues := make([]NamingIssue, 0)

	for _, component := range components {
		violated := evaluateRules(component.Name)
		if len(violated) == 0 {
			continue
		}
		issues = append(issues, NamingIssue{
			ID:         component.ID,
			Name:       component.Name,
			Issues:     violated,
			Suggestion: SuggestName(component.Name),
		})
	}

	report := NamingReport{
		TotalComponents: len(components),
		IssueCount:      len(issues),
		Issues:          issues,
	}
	if len(components) > 0 {
		compliant := len(components) - len(issues)
		rate := fmt.Sprintf("%.1f", float64(compliant)/float64(len(components))*100)
		report.ComplianceRate = &rate
	}
	return report
}

func evaluateRules(name string) []string {
	var violated []string
	for _, rule := range namingRules {
		if rule.violates(name) {
			violated = append(violated, rule.issue)
		}
	}
	return violated
}

// SuggestName normalizes a display name toward kebab-case: lowercase the
// whole name, collapse each whitespace run into a single hyphen, then
// strip every rune that is not a lowercase letter, digit or hyphen.
//
// The transformation mirrors the rewrite callers already depend on, so it
// is intentionally not re-validated: underscores are stripped rather than
// converted, and leading or doubled hyphens can survive. The output is
// informational, not a guaranteed kebab-case rewrite.
func SuggestName(name string) string {
	suggestion := whitespaceRunPattern.ReplaceAllString(strings.ToLower(name), "-")
	return invalidRunePattern.ReplaceAllString(suggestion, "")
}
