package handlers

import (
	"net/http"

	"designaudit/application/queries"
	querybus "designaudit/application/queries/bus"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FileHandler handles file audit HTTP requests
type FileHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *FileHandler {
	return &FileHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetOverview handles GET /files/{fileKey}
func (h *FileHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")

	query := queries.GetFileOverviewQuery{FileKey: fileKey}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.respondQueryError(w, r, "Failed to get file overview", err,
			zap.String("fileKey", fileKey))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListComponents handles GET /files/{fileKey}/components
func (h *FileHandler) ListComponents(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")

	query := queries.ListComponentsQuery{FileKey: fileKey}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.respondQueryError(w, r, "Failed to list components", err,
			zap.String("fileKey", fileKey))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// SearchComponents handles GET /files/{fileKey}/components/search?term=
func (h *FileHandler) SearchComponents(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")
	term := r.URL.Query().Get("term")

	// An absent or empty term is valid: it matches every component.
	query := queries.SearchComponentsQuery{
		FileKey:    fileKey,
		SearchTerm: term,
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.respondQueryError(w, r, "Failed to search components", err,
			zap.String("fileKey", fileKey),
			zap.String("term", term))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListStyles handles GET /files/{fileKey}/styles
func (h *FileHandler) ListStyles(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")

	query := queries.ListStylesQuery{FileKey: fileKey}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.respondQueryError(w, r, "Failed to list styles", err,
			zap.String("fileKey", fileKey))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// AnalyzeNaming handles GET /files/{fileKey}/naming
func (h *FileHandler) AnalyzeNaming(w http.ResponseWriter, r *http.Request) {
	fileKey := chi.URLParam(r, "fileKey")

	query := queries.AnalyzeNamingQuery{FileKey: fileKey}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.respondQueryError(w, r, "Failed to analyze naming", err,
			zap.String("fileKey", fileKey))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *FileHandler) respondQueryError(w http.ResponseWriter, r *http.Request, message string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	h.logger.Error(message, fields...)
	respondError(w, err)
}
