package identity

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/lsgame/roomsvc/internal/domain"
)

// errorResponse is the error body returned by the gateway sidecar
type errorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

type identityServiceImpl struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
}

// NewIdentityService creates a client for the gateway's identity resolver.
// Lookups are idempotent reads, so transient failures are retried before
// being surfaced to the caller.
func NewIdentityService(baseURL, apiKey string) domain.IdentityService {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil

	return &identityServiceImpl{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// ResolveUser resolves an opaque user id to a display handle, including the
// synthetic-account classification used to reject bot hosts and targets
func (s *identityServiceImpl) ResolveUser(userID int64) (*domain.UserHandle, error) {
	url := fmt.Sprintf("%s/api/v1/users/%d", s.baseURL, userID)
	var handle domain.UserHandle
	if err := s.sendRequest(http.MethodGet, url, http.StatusOK, &handle); err != nil {
		return nil, err
	}
	return &handle, nil
}

// sendRequest sends an HTTP request and decodes the response
func (s *identityServiceImpl) sendRequest(method, url string, expectedStatus int, out any) error {
	req, err := retryablehttp.NewRequest(method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		svcErr := &domain.IdentityServiceError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Code != "" {
			svcErr.Code = errResp.Code
			svcErr.Message = errResp.Msg
		}
		return svcErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
