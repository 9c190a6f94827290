package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var httpClient = http.Client{
	Timeout: 30 * time.Second,
}

// Get fetches the url with the given headers and returns the raw body.
// Non-2xx responses are returned as errors with a body excerpt for context.
func Get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Get: request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to read response body: %w", err)
	}

	if res.StatusCode >= 400 {
		excerpt := body
		if len(excerpt) > 256 {
			excerpt = excerpt[:256]
		}

		return nil, fmt.Errorf("Get: %s returned %d: %s", url, res.StatusCode, excerpt)
	}

	return body, nil
}
