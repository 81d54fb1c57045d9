// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"
	"encoding/json"

	"designaudit/application/ports"

	"github.com/stretchr/testify/mock"
)

// MockDocumentFetcher is a testify mock for ports.DocumentFetcher
type MockDocumentFetcher struct {
	mock.Mock
}

// GetFile mocks the document snapshot fetch
func (m *MockDocumentFetcher) GetFile(ctx context.Context, fileKey string) (*ports.FileSnapshot, error) {
	args := m.Called(ctx, fileKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.FileSnapshot), args.Error(1)
}

// GetNode mocks the single-node fetch
func (m *MockDocumentFetcher) GetNode(ctx context.Context, fileKey, nodeID string) (json.RawMessage, error) {
	args := m.Called(ctx, fileKey, nodeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
