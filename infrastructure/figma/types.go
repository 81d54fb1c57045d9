package figma

import (
	stdjson "encoding/json"

	"designaudit/domain/audit"
)

// filePayload is the subset of the GET /v1/files/{key} response the audit
// service consumes. The document tree decodes directly into the domain
// node type.
type filePayload struct {
	Name         string                       `json:"name"`
	LastModified string                       `json:"lastModified"`
	Version      string                       `json:"version"`
	Document     audit.DocumentNode           `json:"document"`
	Styles       map[string]audit.StyleRecord `json:"styles"`
}

// nodesPayload is the GET /v1/files/{key}/nodes response. Node entries are
// kept raw for detail passthrough.
type nodesPayload struct {
	Nodes map[string]stdjson.RawMessage `json:"nodes"`
}
