// Package authapi is a thin client for the remote signup/login API.
// Each call sends one JSON POST relative to the configured base URL and hands
// the response body back untouched. There are no retries; failures are the
// caller's to handle.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/JaimeStill/design-hub/pkg/logging"
)

const (
	signupEndpoint = "/signup"
	loginEndpoint  = "/login"
)

// SignupRequest is the body sent to the signup endpoint.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client issues auth calls against a single base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	resty      *resty.Client
}

type Option func(*Client)

// WithHTTPClient sends requests through hc. The configured timeout is not
// applied to hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client from a finalized Config.
func New(cfg *Config, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient != nil {
		c.resty = resty.NewWithClient(c.httpClient)
	} else {
		c.resty = resty.New().SetTimeout(cfg.TimeoutDuration())
	}

	c.resty.
		SetBaseURL(c.baseURL).
		SetLogger(restyLogger{c.logger}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Signup registers a user. The credentials are forwarded without local validation.
func (c *Client) Signup(ctx context.Context, username, email, password string) (json.RawMessage, error) {
	return c.post(ctx, signupEndpoint, SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
}

// Login authenticates a user and returns the server's response body.
func (c *Client) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	return c.post(ctx, loginEndpoint, LoginRequest{
		Email:    email,
		Password: password,
	})
}

// post sends exactly one request. Transport errors are returned as produced by
// the underlying http.Client.
func (c *Client) post(ctx context.Context, endpoint string, payload any) (json.RawMessage, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetBody(payload).
		Post(endpoint)
	if err != nil {
		c.logger.Debug("auth request failed", "endpoint", endpoint, "error", err)
		return nil, err
	}

	c.logger.Debug("auth request", "endpoint", endpoint, "status", resp.StatusCode())

	data := resp.Body()
	if !resp.IsSuccess() {
		return nil, &StatusError{
			Endpoint:    endpoint,
			StatusCode:  resp.StatusCode(),
			ContentType: resp.Header().Get("Content-Type"),
			Body:        data,
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, ErrInvalidResponse
	}

	return json.RawMessage(data), nil
}

// restyLogger routes resty's own diagnostics into the client's slog logger.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
