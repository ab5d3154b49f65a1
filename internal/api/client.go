package api

// Package api is the typed client for the remote restaurant API. Every
// portal page is a thin view over this client: one request per user
// action, no retries, failures classified for the alert screen.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Options groups dependencies for Client.
type Options struct {
	BaseURL    string       // Required: base URL prefixed to all request paths
	HTTPClient *http.Client // Optional: defaults to a client with a request timeout
	Logger     *slog.Logger // Optional: structured logger
}

// Client calls the remote restaurant API.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

// New constructs a Client, validating the base URL strictly.
func New(opts Options) (*Client, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL scheme: %s", u.Scheme)
	}
	if strings.TrimSpace(u.Host) == "" {
		return nil, errors.New("invalid base URL: missing host")
	}

	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "api_client")
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpc:   httpc,
		logger:  logger,
	}, nil
}

// call issues a single request and classifies the outcome. A response is
// a success only when the HTTP status is 2xx and the envelope's status
// field reads "success"; either failing yields an *Error. A 2xx body
// without a status field is a failure, not a success.
func (c *Client) call(ctx context.Context, method, path, token string, body any) (envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return envelope{}, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return envelope{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.WarnContext(ctx, "remote call failed", "method", method, "path", path, "error", err)
		}
		return envelope{}, &Error{Code: "500", Err: err}
	}
	defer resp.Body.Close()

	env, decodeErr := decodeEnvelope(resp.Body)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if ok && decodeErr == nil && env.status() == "success" {
		return env, nil
	}

	apiErr := &Error{Code: codeForStatus(resp.StatusCode), Err: decodeErr}
	if decodeErr == nil {
		apiErr.Message = env.message()
	}
	if c.logger != nil {
		c.logger.WarnContext(ctx, "remote call rejected",
			"method", method, "path", path, "http_status", resp.StatusCode, "api_status", env.status())
	}
	return envelope{}, apiErr
}

// codeForStatus maps an HTTP status to the display code shown on the
// alert screen. Unrecognized statuses fall back to "500".
func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusNotFound, http.StatusConflict,
		http.StatusInternalServerError, http.StatusNotImplemented, http.StatusBadGateway:
		return strconv.Itoa(status)
	default:
		return "500"
	}
}

func asError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
