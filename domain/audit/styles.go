package audit

import "sort"

// StyleView is the classified, caller-facing view of one style registry
// entry.
type StyleView struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StyleCatalog partitions a style registry into design token categories.
// An entry appears in exactly one list, or in neither when its type is
// unrecognized.
type StyleCatalog struct {
	ColorStyles []StyleView `json:"colorStyles"`
	TextStyles  []StyleView `json:"textStyles"`
}

// Style type tags the classifier recognizes. Everything else is dropped
// without a warning; unknown token categories are not an error.
const (
	StyleTypeFill = "FILL"
	StyleTypeText = "TEXT"
)

// ClassifyStyles partitions styles into color (FILL) and text (TEXT)
// tokens. Entries are visited in ascending key order so the result is
// deterministic for a fixed input; relative order within each partition
// follows that same ordering.
func ClassifyStyles(styles map[string]StyleRecord) StyleCatalog {
	catalog := StyleCatalog{
		ColorStyles: make([]StyleView, 0),
		TextStyles:  make([]StyleView, 0),
	}

	keys := make([]string, 0, len(styles))
	for key := range styles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		record := styles[key]
		view := StyleView{
			Key:         key,
			Name:        record.Name,
			Description: record.Description,
		}
		switch record.StyleType {
		case StyleTypeFill:
			catalog.ColorStyles = append(catalog.ColorStyles, view)
		case StyleTypeText:
			catalog.TextStyles = append(catalog.TextStyles, view)
		}
	}

	return catalog
}
