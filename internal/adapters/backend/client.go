package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	maxResponseBytes = 1 << 20
	requestIDHeader  = "X-Request-ID"
	userAgent        = "stockdash"
)

// Client talks to the stockdash REST backend. It implements both
// ports.AuthGateway and ports.StockGateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("backend base url is required")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("backend base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("backend base url host is required")
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: trimmed, httpClient: httpClient}, nil
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= http.StatusOK && r.status < http.StatusMultipleChoices
}

func (c *Client) do(ctx context.Context, method, path string, body any) (response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return response{}, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)

	requestID := uuid.NewString()
	request.Header.Set(requestIDHeader, requestID)

	logger := zerolog.Ctx(ctx).With().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()

	started := time.Now()
	resp, err := c.httpClient.Do(request)
	if err != nil {
		logger.Debug().Err(err).Dur("duration", time.Since(started)).Msg("backend request failed")
		return response{}, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return response{}, fmt.Errorf("read response: %w", err)
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("backend request")

	return response{status: resp.StatusCode, body: data}, nil
}
