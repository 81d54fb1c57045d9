package queries

import "errors"

// ListStylesQuery represents a query for a file's classified style tokens
type ListStylesQuery struct {
	FileKey string
}

// Validate validates the query
func (q ListStylesQuery) Validate() error {
	if q.FileKey == "" {
		return errors.New("file key is required")
	}
	return nil
}
