package queries

import "errors"

// ListComponentsQuery represents a query to list all components of a file
type ListComponentsQuery struct {
	FileKey string
}

// Validate validates the query
func (q ListComponentsQuery) Validate() error {
	if q.FileKey == "" {
		return errors.New("file key is required")
	}
	return nil
}
