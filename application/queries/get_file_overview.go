package queries

import "errors"

// GetFileOverviewQuery represents a query for a file's audit overview
type GetFileOverviewQuery struct {
	FileKey string
}

// Validate validates the query
func (q GetFileOverviewQuery) Validate() error {
	if q.FileKey == "" {
		return errors.New("file key is required")
	}
	return nil
}
