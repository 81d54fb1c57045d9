package handlers

import (
	"context"
	"fmt"

	"designaudit/application/ports"
	"designaudit/application/queries"
	"designaudit/domain/audit"

	"go.uber.org/zap"
)

// AnalyzeNamingHandler handles naming-convention audit queries
type AnalyzeNamingHandler struct {
	fetcher ports.DocumentFetcher
	logger  *zap.Logger
}

// NewAnalyzeNamingHandler creates a new naming audit handler
func NewAnalyzeNamingHandler(fetcher ports.DocumentFetcher, logger *zap.Logger) *AnalyzeNamingHandler {
	return &AnalyzeNamingHandler{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Handle executes the naming audit query
func (h *AnalyzeNamingHandler) Handle(ctx context.Context, query queries.AnalyzeNamingQuery) (*audit.NamingReport, error) {
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

	report := audit.AnalyzeNaming(components)

	h.logger.Debug("Naming audit completed",
		zap.String("fileKey", query.FileKey),
		zap.Int("totalComponents", report.TotalComponents),
		zap.Int("issueCount", report.IssueCount),
	)

	return &report, nil
}
