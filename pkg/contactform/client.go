package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SubmitResponse is the envelope returned by the submission endpoint.
// Success responses carry Message; failures carry Error.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Submitter sends a candidate message to the submission endpoint.
// Implemented by Client; the form controller accepts the interface so
// tests can substitute a stub transport.
type Submitter interface {
	Submit(ctx context.Context, f Fields) (*SubmitResponse, error)
}

// Client is the HTTP submission client. Uses raw HTTP calls against the
// backend's JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given backend base URL,
// e.g. "https://example.dev".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

var _ Submitter = (*Client)(nil)

// submitBody is the JSON body for POST /api/contact.
type submitBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Submit POSTs the candidate to /api/contact and decodes the response
// envelope. A non-nil error means the request never produced a decodable
// response (network failure, timeout); HTTP-level failures are reported
// through the envelope's Success/Error fields instead.
func (c *Client) Submit(ctx context.Context, f Fields) (*SubmitResponse, error) {
	payload, err := json.Marshal(submitBody{
		Name:    f.Name,
		Email:   f.Email,
		Subject: f.Subject,
		Message: f.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("contactform: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("contactform: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contactform: submit: %w", err)
	}
	defer resp.Body.Close()

	var out SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("contactform: decode response: %w", err)
	}
	return &out, nil
}
