package handlers

import (
	"context"
	"testing"

	"designaudit/application/ports"
	"designaudit/application/queries"
	"designaudit/tests/fixtures"
	"designaudit/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func searchSnapshot() *ports.FileSnapshot {
	return &ports.FileSnapshot{
		Name: "Design System",
		Document: fixtures.Document(
			fixtures.Frame("1:0", "Page 1",
				fixtures.ComponentSet("1:1", "Button",
					fixtures.Component("1:2", "button/primary"),
					fixtures.Component("1:3", "button/secondary"),
				),
				fixtures.Component("1:4", "card"),
			),
		),
	}
}

func TestSearchComponentsHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFetcher := new(mocks.MockDocumentFetcher)
	logger := zap.NewNop()

	query := queries.SearchComponentsQuery{FileKey: "file123", SearchTerm: "BUTTON"}
	mockFetcher.On("GetFile", ctx, "file123").Return(searchSnapshot(), nil)

	handler := NewSearchComponentsHandler(mockFetcher, logger)

	// Act
	result, err := handler.Handle(ctx, query)

	// Assert: term case must not affect the match set; extraction order is
	// preserved.
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "BUTTON", result.SearchTerm)
	assert.Equal(t, 3, result.MatchCount)
	assert.Equal(t, "1:1", result.Matches[0].ID)
	assert.Equal(t, "1:2", result.Matches[1].ID)
	assert.Equal(t, "1:3", result.Matches[2].ID)
	mockFetcher.AssertExpectations(t)
}

func TestSearchComponentsHandler_Handle_EmptyTermMatchesAll(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFetcher := new(mocks.MockDocumentFetcher)
	logger := zap.NewNop()

	query := queries.SearchComponentsQuery{FileKey: "file123"}
	mockFetcher.On("GetFile", ctx, "file123").Return(searchSnapshot(), nil)

	handler := NewSearchComponentsHandler(mockFetcher, logger)

	// Act
	result, err := handler.Handle(ctx, query)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, result.MatchCount)
	mockFetcher.AssertExpectations(t)
}

func TestSearchComponentsHandler_Handle_MissingFileKey(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockFetcher := new(mocks.MockDocumentFetcher)
	logger := zap.NewNop()

	handler := NewSearchComponentsHandler(mockFetcher, logger)

	// Act
	result, err := handler.Handle(ctx, queries.SearchComponentsQuery{SearchTerm: "button"})

	// Assert
	assert.Error(t, err)
	assert.Nil(t, result)
}
