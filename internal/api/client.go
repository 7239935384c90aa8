// Package api is the HTTP client for the contact backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"contactup/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// ServerError is a non-ok response. Message is the body's "error" field, if any.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a client for baseURL. No timeout is applied to requests.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

type checkRequest struct {
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
}

type checkResponse struct {
	Exists bool `json:"exists"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CheckContact asks whether a contact with this phone and country code already exists.
func (c *Client) CheckContact(ctx context.Context, phone, countryCode string) (bool, error) {
	resp, err := c.do(ctx, http.MethodPost, "/check-contact", checkRequest{Phone: phone, CountryCode: countryCode})
	if err != nil {
		return false, err
	}
	var out checkResponse
	if err := decodeJSON(resp, &out); err != nil {
		return false, fmt.Errorf("check contact: %w", err)
	}
	return out.Exists, nil
}

// Upload creates a contact. Any 2xx is success regardless of body.
func (c *Client) Upload(ctx context.Context, contact models.Contact) error {
	resp, err := c.do(ctx, http.MethodPost, "/upload", contact)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// ListContacts fetches the full collection in display order.
func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	resp, err := c.do(ctx, http.MethodGet, "/contacts", nil)
	if err != nil {
		return nil, err
	}
	var out []models.Contact
	if err := decodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if out == nil {
		out = []models.Contact{}
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshalling request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	c.logger.Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
		zap.Int("status", resp.StatusCode))
	return resp, nil
}

func decodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func serverError(resp *http.Response) error {
	se := &ServerError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var payload errorResponse
		if json.Unmarshal(body, &payload) == nil {
			se.Message = payload.Error
		}
	}
	return se
}
