package audit

// FileOverview summarizes one document snapshot: file metadata plus the
// headline counts a design-system review starts from.
type FileOverview struct {
	Name              string `json:"name"`
	LastModified      string `json:"lastModified"`
	Version           string `json:"version"`
	PageCount         int    `json:"pageCount"`
	ComponentCount    int    `json:"componentCount"`
	ComponentSetCount int    `json:"componentSetCount"`
	StyleCount        int    `json:"styleCount"`
}

// ComponentListing is the flat extraction result in traversal order.
type ComponentListing struct {
	Total      int               `json:"total"`
	Components []ComponentRecord `json:"components"`
}

// StyleListing is the classified style registry.
type StyleListing struct {
	Total       int         `json:"total"`
	ColorStyles []StyleView `json:"colorStyles"`
	TextStyles  []StyleView `json:"textStyles"`
}

// SearchReport carries the matches for one search term together with the
// term itself, so callers can correlate concurrent searches.
type SearchReport struct {
	SearchTerm string            `json:"searchTerm"`
	MatchCount int               `json:"matchCount"`
	Matches    []ComponentRecord `json:"matches"`
}

// NewComponentListing assembles the component listing report.
func NewComponentListing(components []ComponentRecord) ComponentListing {
	return ComponentListing{
		Total:      len(components),
		Components: components,
	}
}

// NewStyleListing assembles the style listing report from a classified
// catalog.
func NewStyleListing(catalog StyleCatalog) StyleListing {
	return StyleListing{
		Total:       len(catalog.ColorStyles) + len(catalog.TextStyles),
		ColorStyles: catalog.ColorStyles,
		TextStyles:  catalog.TextStyles,
	}
}

// NewSearchReport assembles the search report for one term.
func NewSearchReport(term string, matches []ComponentRecord) SearchReport {
	return SearchReport{
		SearchTerm: term,
		MatchCount: len(matches),
		Matches:    matches,
	}
}

// NewFileOverview assembles the overview report. Pages are the root's
// direct children; component counts come from the extraction so the
// overview agrees with the component listing by construction.
func NewFileOverview(name, lastModified, version string, root *DocumentNode, components []ComponentRecord, styles map[string]StyleRecord) FileOverview {
	overview := FileOverview{
		Name:         name,
		LastModified: lastModified,
		Version:      version,
		StyleCount:   len(styles),
	}
	if root != nil {
		overview.PageCount = len(root.Children)
	}
	for _, component := range components {
		switch ParseNodeKind(component.Type) {
		case KindComponent:
			overview.ComponentCount++
		case KindComponentSet:
			overview.ComponentSetCount++
		}
	}
	return overview
}
