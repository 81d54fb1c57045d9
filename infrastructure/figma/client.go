// Package figma implements the DocumentFetcher port against the Figma
// REST file API. It is the only place the audit service performs I/O; the
// audit engine itself consumes the snapshots this client returns.
package figma

import (
	"context"
	stdjson "encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"designaudit/application/ports"
	pkgerrors "designaudit/pkg/errors"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const tokenHeader = "X-Figma-Token"

// Client fetches document snapshots from a Figma-compatible file API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new file API client
func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// GetFile fetches the full document snapshot for a file
func (c *Client) GetFile(ctx context.Context, fileKey string) (*ports.FileSnapshot, error) {
	url := fmt.Sprintf("%s/v1/files/%s", c.baseURL, fileKey)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var payload filePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, pkgerrors.NewExternalError("figma", fmt.Errorf("failed to decode file payload: %w", err))
	}

	c.logger.Debug("File snapshot fetched",
		zap.String("fileKey", fileKey),
		zap.String("version", payload.Version),
		zap.Int("styleCount", len(payload.Styles)),
	)

	return &ports.FileSnapshot{
		Name:         payload.Name,
		LastModified: payload.LastModified,
		Version:      payload.Version,
		Document:     &payload.Document,
		Styles:       payload.Styles,
	}, nil
}

// GetNode fetches a single node payload by id and returns it untouched
func (c *Client) GetNode(ctx context.Context, fileKey, nodeID string) (stdjson.RawMessage, error) {
	url := fmt.Sprintf("%s/v1/files/%s/nodes?ids=%s", c.baseURL, fileKey, nodeID)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var payload nodesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, pkgerrors.NewExternalError("figma", fmt.Errorf("failed to decode nodes payload: %w", err))
	}

	node, ok := payload.Nodes[nodeID]
	if !ok || len(node) == 0 || string(node) == "null" {
		return nil, pkgerrors.NewNotFoundError(fmt.Sprintf("node %s", nodeID))
	}

	return node, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to build request").WithCause(err)
	}
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.NewNetworkError("file API request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.NewNetworkError("failed to read file API response", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized:
		return nil, pkgerrors.NewUnauthorizedError("file API rejected the access token")
	case resp.StatusCode == http.StatusNotFound:
		return nil, pkgerrors.NewNotFoundError("file")
	default:
		c.logger.Warn("Unexpected file API status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, pkgerrors.NewExternalError("figma", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}
