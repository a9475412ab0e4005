// Package upstream is the REST client for the commerce platform API, the
// single source of truth for every entity the gateway serves. Responses are
// normalized (legacy `_id` folded into `id`) before anything downstream sees
// them.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/internal/model"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

// APIError is a non-2xx upstream response with its decoded message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.StatusCode, e.Message)
}

// NotFound reports whether err is an upstream 404.
func NotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL      string
	serviceToken string
	httpc        *http.Client
	logger       logger.ZapLogger
}

func NewClient(baseURL, serviceToken string, timeout time.Duration, log logger.ZapLogger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		serviceToken: serviceToken,
		httpc:        &http.Client{Timeout: timeout},
		logger:       log,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token := auth.Token(ctx)
	if token == "" {
		token = c.serviceToken
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream: decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeErrorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return "request failed"
}

// GetList fetches a collection and normalizes every record.
func GetList[T any, PT interface {
	*T
	model.Normalizable
}](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.Get(ctx, path, &items); err != nil {
		return nil, err
	}
	for i := range items {
		PT(&items[i]).Normalize()
	}
	return items, nil
}

// GetOne fetches a single record and normalizes it.
func GetOne[T any, PT interface {
	*T
	model.Normalizable
}](ctx context.Context, c *Client, path string) (*T, error) {
	var item T
	if err := c.Get(ctx, path, &item); err != nil {
		return nil, err
	}
	PT(&item).Normalize()
	return &item, nil
}

// PostOne submits a create/update body and normalizes the echoed record.
func PostOne[T any, PT interface {
	*T
	model.Normalizable
}](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	var item T
	if err := c.do(ctx, method, path, body, &item); err != nil {
		return nil, err
	}
	PT(&item).Normalize()
	return &item, nil
}
