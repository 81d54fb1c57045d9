package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"designaudit/application/ports"
	"designaudit/application/queries"

	"go.uber.org/zap"
)

// GetNodeHandler handles single-node detail queries. The payload is a
// direct passthrough of the externally fetched node; no audit logic runs.
type GetNodeHandler struct {
	fetcher ports.DocumentFetcher
	logger  *zap.Logger
}

// NewGetNodeHandler creates a new node detail handler
func NewGetNodeHandler(fetcher ports.DocumentFetcher, logger *zap.Logger) *GetNodeHandler {
	return &GetNodeHandler{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Handle executes the node detail query
func (h *GetNodeHandler) Handle(ctx context.Context, query queries.GetNodeQuery) (json.RawMessage, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	payload, err := h.fetcher.GetNode(ctx, query.FileKey, query.NodeID)
	if err != nil {
		h.logger.Error("Node fetch failed",
			zap.String("fileKey", query.FileKey),
			zap.String("nodeID", query.NodeID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to fetch node: %w", err)
	}

	return payload, nil
}
