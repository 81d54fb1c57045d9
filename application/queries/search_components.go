package queries

import "errors"

// SearchComponentsQuery represents a component name search within a file.
// An empty SearchTerm is valid and matches every component.
type SearchComponentsQuery struct {
	FileKey    string
	SearchTerm string
}

// Validate validates the query
func (q SearchComponentsQuery) Validate() error {
	if q.FileKey == "" {
		return errors.New("file key is required")
	}
	return nil
}
