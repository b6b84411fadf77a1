// Package api is the single point of HTTP egress to the platform backend.
// It attaches the session's bearer token to outgoing requests, observes
// response status codes for logging, and decodes the backend's uniform
// "{success, data}" envelope. It never retries, never redirects and never
// clears the session itself; navigation-layer decisions belong to the auth
// manager and the route guard.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"arena/config"
	"arena/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-Id"
	contentTypeJSON     = "application/json"
	bearerPrefix        = "Bearer "
)

// Client talks to the platform backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	logger     *slog.Logger
	validate   *validator.Validate
}

// New creates a Client from config. The session store is consulted before
// every outbound request; a present token is attached as a bearer credential.
func New(cfg *config.Config, store session.Store, logger *slog.Logger) (*Client, error) {
	httpClient := &http.Client{Timeout: cfg.API.Timeout}

	if cfg.API.WithCredentials {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errors.Wrap(err, "create cookie jar")
		}
		httpClient.Jar = jar
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient: httpClient,
		store:      store,
		logger:     logger,
		validate:   validator.New(),
	}, nil
}

// envelope is the backend's uniform success wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doRequest performs one HTTP round trip and decodes the envelope's data
// field into result when both are present.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any, result any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return errors.Wrap(err, "create request")
	}

	requestID := uuid.New().String()
	req.Header.Set(headerRequestID, requestID)
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}

	// Request interceptor: attach the bearer token when a session exists.
	if token, ok := c.store.Get(); ok {
		req.Header.Set(headerAuthorization, bearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure: no response was received. Logged and rethrown,
		// never silently absorbed.
		c.logger.Error("request failed before a response was received",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)

		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	// Response interceptor: observe and log, decide nothing. 401 handling
	// lives in the auth manager and the route guard so speculative probes
	// cannot trigger redirect loops.
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		c.logger.Warn("unauthorized request",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
		)
	case http.StatusForbidden:
		c.logger.Warn("forbidden request",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
		)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return parseError(resp.StatusCode, respBody)
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}

	var wrapped envelope
	if err := json.Unmarshal(respBody, &wrapped); err != nil {
		return errors.Wrap(err, "parse response envelope")
	}
	if len(wrapped.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(wrapped.Data, result); err != nil {
		return errors.Wrap(err, "parse response data")
	}

	return nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	return c.doRequest(ctx, http.MethodGet, path, query, nil, result)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	return c.doRequest(ctx, http.MethodPost, path, nil, body, result)
}

// patch performs a PATCH request.
func (c *Client) patch(ctx context.Context, path string, body any, result any) error {
	return c.doRequest(ctx, http.MethodPatch, path, nil, body, result)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil, nil)
}
