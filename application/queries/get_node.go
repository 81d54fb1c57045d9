package queries

import "errors"

// GetNodeQuery represents a query for one node's raw payload
type GetNodeQuery struct {
	FileKey string
	NodeID  string
}

// Validate validates the query
func (q GetNodeQuery) Validate() error {
	if q.FileKey == "" {
		return errors.New("file key is required")
	}
	if q.NodeID == "" {
		return errors.New("node ID is required")
	}
	return nil
}
