package queries

import "errors"

// AnalyzeNamingQuery represents a naming-convention audit of a file
type AnalyzeNamingQuery struct {
	FileKey string
}

// Validate validates the query
func (q AnalyzeNamingQuery) Validate() error {
	if q.FileKey == "" {
		return errors.New("file key is required")
	}
	return nil
}
