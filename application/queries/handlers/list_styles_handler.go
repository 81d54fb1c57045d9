package handlers

import (
	"context"
	"fmt"

	"designaudit/application/ports"
	"designaudit/application/queries"
	"designaudit/domain/audit"

	"go.uber.org/zap"
)

// ListStylesHandler handles style listing queries
type ListStylesHandler struct {
	fetcher ports.DocumentFetcher
	logger  *zap.Logger
}

// NewListStylesHandler creates a new style listing handler
func NewListStylesHandler(fetcher ports.DocumentFetcher, logger *zap.Logger) *ListStylesHandler {
	return &ListStylesHandler{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Handle executes the style listing query
func (h *ListStylesHandler) Handle(ctx context.Context, query queries.ListStylesQuery) (*audit.StyleListing, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	snapshot, err := h.fetcher.GetFile(ctx, query.FileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file: %w", err)
	}

	catalog := audit.ClassifyStyles(snapshot.Styles)
	listing := audit.NewStyleListing(catalog)

	h.logger.Debug("Styles classified",
		zap.String("fileKey", query.FileKey),
		zap.Int("colorStyles", len(listing.ColorStyles)),
		zap.Int("textStyles", len(listing.TextStyles)),
	)

	return &listing, nil
}
