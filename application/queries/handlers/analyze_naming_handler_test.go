package handlers

import (
	"context"
	"errors"
	"testing"

	"designaudit/application/ports"
	"designaudit/application/queries"
	"designaudit/domain/audit"
	"designaudit/tests/fixtures"
	"designaudit/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAnalyzeNamingHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFetcher := new(mocks.MockDocumentFetcher)
	logger := zap.NewNop()

	snapshot := &ports.FileSnapshot{
		Name:    "Design System",
		Version: "7",
		Document: fixtures.Document(
			fixtures.Frame("1:0", "Page 1",
				fixtures.Component("1:1", "nav-bar"),
				fixtures.Component("1:2", "Nav Bar_Item"),
			),
		),
	}

	query := queries.AnalyzeNamingQuery{FileKey: "file123"}

	// Setup mocks
	mockFetcher.On("GetFile", ctx, "file123").Return(snapshot, nil)

	handler := NewAnalyzeNamingHandler(mockFetcher, logger)

	// Act
	result, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.TotalComponents)
	assert.Equal(t, 1, result.IssueCount)
	require.NotNil(t, result.ComplianceRate)
	assert.Equal(t, "50.0", *result.ComplianceRate)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "1:2", result.Issues[0].ID)
	assert.Equal(t, "nav-baritem", result.Issues[0].Suggestion)
	mockFetcher.AssertExpectations(t)
}

func TestAnalyzeNamingHandler_Handle_EmptyDocument(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFetcher := new(mocks.MockDocumentFetcher)
	logger := zap.NewNop()

	snapshot := &ports.FileSnapshot{
		Name:     "Empty File",
		Document: fixtures.Document(),
	}

	query := queries.AnalyzeNamingQuery{FileKey: "file123"}
	mockFetcher.On("GetFile", ctx, "file123").Return(snapshot, nil)

	handler := NewAnalyzeNamingHandler(mockFetcher, logger)

	// Act
	result, err := handler.Handle(ctx, query)

	// Assert: no components means no rate, not a NaN artifact.
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.TotalComponents)
	assert.Nil(t, result.ComplianceRate)
	mockFetcher.AssertExpectations(t)
}

func TestAnalyzeNamingHandler_Handle_FetchError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFetcher := new(mocks.MockDocumentFetcher)
	logger := zap.NewNop()

	query := queries.AnalyzeNamingQuery{FileKey: "file123"}
	mockFetcher.On("GetFile", ctx, "file123").Return(nil, errors.New("upstream timeout"))

	handler := NewAnalyzeNamingHandler(mockFetcher, logger)

	// Act
	result, err := handler.Handle(ctx, query)

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch file")
	assert.Nil(t, result)
	mockFetcher.AssertExpectations(t)
}

func TestAnalyzeNamingHandler_Handle_InvalidQuery(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFetcher := new(mocks.MockDocumentFetcher)
	logger := zap.NewNop()

	handler := NewAnalyzeNamingHandler(mockFetcher, logger)

	// Act
	result, err := handler.Handle(ctx, queries.AnalyzeNamingQuery{})

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file key is required")
	assert.Nil(t, result)
}

func TestAnalyzeNamingHandler_Handle_MalformedDocument(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFetcher := new(mocks.MockDocumentFetcher)
	logger := zap.NewNop()

	snapshot := &ports.FileSnapshot{
		Name:     "Hostile File",
		Document: fixtures.DeepDocument(1500),
	}

	query := queries.AnalyzeNamingQuery{FileKey: "file123"}
	mockFetcher.On("GetFile", ctx, "file123").Return(snapshot, nil)

	handler := NewAnalyzeNamingHandler(mockFetcher, logger)

	// Act
	result, err := handler.Handle(ctx, query)

	// Assert
	assert.ErrorIs(t, err, audit.ErrDocumentTooDeep)
	assert.Nil(t, result)
	mockFetcher.AssertExpectations(t)
}
