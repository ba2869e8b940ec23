package slatectl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// HTTPClient wraps http.Client with the run's timeout.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client against the service.
func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// CheckHealth verifies the service is reachable.
func (c *HTTPClient) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("building health request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("connecting to service: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrServiceUnhealthy, resp.StatusCode)
	}
	return nil
}

// UploadCSV posts one local CSV document to its snapshot section.
func (c *HTTPClient) UploadCSV(ctx context.Context, kind, path string) (UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return UploadResult{}, fmt.Errorf("opening %s upload: %w", kind, err)
	}
	defer f.Close()

	url := c.baseURL + "/api/v1/snapshots/" + kind
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, f)
	if err != nil {
		return UploadResult{}, fmt.Errorf("building %s upload: %w", kind, err)
	}
	req.Header.Set("Content-Type", "text/csv")

	resp, err := c.client.Do(req)
	if err != nil {
		return UploadResult{}, fmt.Errorf("uploading %s: %w", kind, err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return UploadResult{}, fmt.Errorf("%w: %s upload got status %d: %s",
			ErrUploadRejected, kind, resp.StatusCode, readErrorBody(resp))
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return UploadResult{}, fmt.Errorf("decoding %s upload response: %w", kind, err)
	}
	return result, nil
}

// FetchSlate retrieves the full ranking report.
func (c *HTTPClient) FetchSlate(ctx context.Context) (Slate, error) {
	var slate Slate
	if err := c.getJSON(ctx, "/api/v1/slate", &slate); err != nil {
		return Slate{}, err
	}
	return slate, nil
}

// FetchDoubleHeader retrieves the viewing recommendations.
func (c *HTTPClient) FetchDoubleHeader(ctx context.Context) (DoubleHeader, error) {
	var dh DoubleHeader
	if err := c.getJSON(ctx, "/api/v1/doubleheader", &dh); err != nil {
		return DoubleHeader{}, err
	}
	return dh, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s got status %d: %s", ErrQueryFailed, path, resp.StatusCode, readErrorBody(resp))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// readErrorBody extracts the service's error message, best effort.
func readErrorBody(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	return string(body)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
