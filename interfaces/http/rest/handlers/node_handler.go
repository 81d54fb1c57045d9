package handlers

import (
	"net/http"

	"designaudit/application/queries"
	querybus "designaudit/application/queries/bus"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NodeHandler handles node detail HTTP requests
type NodeHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *NodeHandler {
	return &NodeHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetNode handles GET /files/{fileKey}/nodes/{nodeID}
func (h *NodeHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")
	nodeID := chi.URLParam(r, "nodeID")

	query := queries.GetNodeQuery{
		FileKey: fileKey,
		NodeID:  nodeID,
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to get node",
			zap.String("fileKey", fileKey),
			zap.String("nodeID", nodeID),
			zap.Error(err),
		)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
