package audit

import "strings"

// SearchComponents filters components by case-insensitive substring
// containment of term within the component name. Both sides are lowercased
// before comparison; there is no trimming and no Unicode normalization
// beyond simple case folding.
//
// An empty term matches every component (the empty string is a substring
// of anything). The result preserves extraction order and does not
// deduplicate: distinct components may legitimately share a name.
func SearchComponents(components []ComponentRecord, term string) []ComponentRecord {
	needle := strings.ToLower(term)

	matches := make([]ComponentRecord, 0)
	for _, component := range components {
		if strings.Contains(strings.ToLower(component.Name), needle) {
			matches = append(matches, component)
		}
	}
	return matches
}
