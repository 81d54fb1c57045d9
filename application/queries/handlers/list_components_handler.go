package handlers

import (
	"context"
	"fmt"

	"designaudit/application/ports"
	"designaudit/application/queries"
	"designaudit/domain/audit"

	"go.uber.org/zap"
)

// ListComponentsHandler handles component listing queries
type ListComponentsHandler struct {
	fetcher ports.DocumentFetcher
	logger  *zap.Logger
}

// NewListComponentsHandler creates a new component listing handler
func NewListComponentsHandler(fetcher ports.DocumentFetcher, logger *zap.Logger) *ListComponentsHandler {
	return &ListComponentsHandler{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Handle executes the component listing query
func (h *ListComponentsHandler) Handle(ctx context.Context, query queries.ListComponentsQuery) (*audit.ComponentListing, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	snapshot, err := h.fetcher.GetFile(ctx, query.FileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file: %w", err)
	}

	components, err := audit.ExtractComponents(snapshot.Document)
	if err != nil {
		h.logger.Error("Component extraction failed",
			zap.String("fileKey", query.FileKey),
			zap.Error(err),
		)
		return nil, err
	}

	listing := audit.NewComponentListing(components)
	return &listing, nil
}
