package ports

import (
	"context"
	"encoding/json"

	"designaudit/domain/audit"
)

// FileSnapshot is one fully-materialized document fetch: file metadata,
// the document tree and the style registry. The audit engine requires the
// whole snapshot up front; it never consumes a partial tree.
type FileSnapshot struct {
	Name         string
	LastModified string
	Version      string
	Document     *audit.DocumentNode
	Styles       map[string]audit.StyleRecord
}

// DocumentFetcher is the port to the external design-file API.
// This is a port in hexagonal architecture - the application doesn't know
// about the implementation.
type DocumentFetcher interface {
	// GetFile fetches the full document snapshot for a file.
	GetFile(ctx context.Context, fileKey string) (*FileSnapshot, error)

	// GetNode fetches a single node payload by id. The payload is passed
	// through to the caller untouched; no audit logic applies.
	GetNode(ctx context.Context, fileKey, nodeID string) (json.RawMessage, error)
}
