package handlers

import (
	"context"
	"fmt"

	"designaudit/application/ports"
	"designaudit/application/queries"
	"designaudit/domain/audit"

	"go.uber.org/zap"
)

// GetFileOverviewHandler handles file overview queries
type GetFileOverviewHandler struct {
	fetcher ports.DocumentFetcher
	logger  *zap.Logger
}

// NewGetFileOverviewHandler creates a new file overview handler
func NewGetFileOverviewHandler(fetcher ports.DocumentFetcher, logger *zap.Logger) *GetFileOverviewHandler {
	return &GetFileOverviewHandler{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Handle executes the file overview query
func (h *GetFileOverviewHandler) Handle(ctx context.Context, query queries.GetFileOverviewQuery) (*audit.FileOverview, error) {
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

	overview := audit.NewFileOverview(
		snapshot.Name,
		snapshot.LastModified,
		snapshot.Version,
		snapshot.Document,
		components,
		snapshot.Styles,
	)

	h.logger.Debug("File overview assembled",
		zap.String("fileKey", query.FileKey),
		zap.Int("componentCount", overview.ComponentCount),
		zap.Int("styleCount", overview.StyleCount),
	)

	return &overview, nil
}
