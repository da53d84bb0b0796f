package credentials

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultHTTPTimeout is the client-level timeout of HTTPSubmitter.
const DefaultHTTPTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is kept for the error message.
const maxErrorBody = 512

// HTTPSubmitter posts credentials as JSON to an authentication endpoint.
type HTTPSubmitter struct {
	// Endpoint is the full URL receiving the POST
	Endpoint string

	// UserAgent is sent with every request when non-empty
	UserAgent string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewHTTPSubmitter creates a submitter for endpoint with the default timeout.
func NewHTTPSubmitter(endpoint string) *HTTPSubmitter {
	return &HTTPSubmitter{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (s *HTTPSubmitter) SetTimeout(timeout time.Duration) {
	s.HTTPClient.Timeout = timeout
}

// Submit sends one POST. 200 and 204 are success; 401 and 403 map to
// ErrInvalidCredentials. No retry is attempted.
func (s *HTTPSubmitter) Submit(ctx context.Context, email, password string) error {
	req, err := NewRequest(email, password)
	if err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &Error{Type: ErrTypeNetwork, Message: "failed to create request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if s.UserAgent != "" {
		httpReq.Header.Set("User-Agent", s.UserAgent)
	}

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		return classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil

	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{
			Type:       ErrTypeAuth,
			Message:    "credentials rejected",
			StatusCode: resp.StatusCode,
			Err:        ErrInvalidCredentials,
		}

	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		if text := strings.TrimSpace(string(snippet)); text != "" {
			msg += " (" + text + ")"
		}
		return &Error{Type: ErrTypeHTTP, Message: msg, StatusCode: resp.StatusCode}
	}
}
