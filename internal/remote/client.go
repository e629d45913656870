package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"notice-cache/internal/config"
	"notice-cache/internal/interfaces"
	"notice-cache/internal/models"
)

// Ensure Client implements interfaces.NoticeSource
var _ interfaces.NoticeSource = (*Client)(nil)

// Client talks to the noticeboard REST API. Every endpoint answers with the
// `{success, message, data}` envelope; a success=false body or a non-2xx
// status maps to *models.RemoteFetchError. The client never retries; the
// only timeout is the HTTP client's.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
	logger     *zap.Logger
}

// NewClient creates a Client for the configured upstream.
func NewClient(cfg *config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout.Std()},
		authToken:  cfg.AuthToken,
		logger:     logger,
	}
}

// Notices fetches the notice list.
func (c *Client) Notices(ctx context.Context) ([]models.Notice, error) {
	var out []models.Notice
	if err := c.getJSON(ctx, "/notices", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NoticeDetail fetches the full body of one notice.
func (c *Client) NoticeDetail(ctx context.Context, id int64) (models.NoticeDetail, error) {
	var out models.NoticeDetail
	if err := c.getJSON(ctx, fmt.Sprintf("/notices/%d", id), &out); err != nil {
		return models.NoticeDetail{}, err
	}
	return out, nil
}

// Attachments fetches the attachment metadata of one notice.
func (c *Client) Attachments(ctx context.Context, id int64) ([]models.Attachment, error) {
	var out []models.Attachment
	if err := c.getJSON(ctx, fmt.Sprintf("/notices/%d/attachments", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LeaveSummary fetches the leave balance for one user.
func (c *Client) LeaveSummary(ctx context.Context, userID string) (models.LeaveSummary, error) {
	var out models.LeaveSummary
	if err := c.getJSON(ctx, "/leave/"+url.PathEscape(userID), &out); err != nil {
		return models.LeaveSummary{}, err
	}
	return out, nil
}

// getJSON performs a GET, unwraps the response envelope and decodes data
// into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &models.RemoteFetchError{Endpoint: path, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.RemoteFetchError{Endpoint: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.RemoteFetchError{Endpoint: path, StatusCode: resp.StatusCode, Err: err}
	}

	var envelope models.Envelope
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Error bodies often still carry the envelope; keep its message
		// when present.
		message := http.StatusText(resp.StatusCode)
		if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
			message = envelope.Message
		}
		return &models.RemoteFetchError{Endpoint: path, StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return &models.RemoteFetchError{Endpoint: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response envelope: %w", err)}
	}
	if !envelope.Success {
		return &models.RemoteFetchError{Endpoint: path, StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &models.RemoteFetchError{Endpoint: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response data: %w", err)}
		}
	}
	return nil
}
