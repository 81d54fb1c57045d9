package handlers

import (
	"context"
	"fmt"

	"designaudit/application/ports"
	"designaudit/application/queries"
	"designaudit/domain/audit"

	"go.uber.org/zap"
)

// SearchComponentsHandler handles component search queries
type SearchComponentsHandler struct {
	fetcher ports.DocumentFetcher
	logger  *zap.Logger
}

// NewSearchComponentsHandler creates a new component search handler
func NewSearchComponentsHandler(fetcher ports.DocumentFetcher, logger *zap.Logger) *SearchComponentsHandler {
	return &SearchComponentsHandler{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Handle executes the component search query
func (h *SearchComponentsHandler) Handle(ctx context.Context, query queries.SearchComponentsQuery) (*audit.SearchReport, error) {
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

	matches := audit.SearchComponents(components, query.SearchTerm)
	report := audit.NewSearchReport(query.SearchTerm, matches)

	h.logger.Debug("Component search completed",
		zap.String("fileKey", query.FileKey),
		zap.String("term", query.SearchTerm),
		zap.Int("matchCount", report.MatchCount),
	)

	return &report, nil
}
