package integrations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultPicsumBaseURL = "https://picsum.photos"
	picsumImageSize      = "1000"
)

// PicsumClient resolves a random image to its final, cacheable URL.
type PicsumClient struct {
	baseURL string
	client  *http.Client
}

func NewPicsumClient(baseURL string, timeout time.Duration) *PicsumClient {
	return &PicsumClient{
		baseURL: trimBaseURL(baseURL, DefaultPicsumBaseURL),
		client:  newHTTPClient(timeout),
	}
}

func (client *PicsumClient) RandomImageURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+"/"+picsumImageSize, nil)
	if err != nil {
		return "", fmt.Errorf("picsum build request: %w", err)
	}

	resp, err := client.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("picsum request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode >= http.StatusBadRequest {
		return "", &StatusError{Service: "picsum", StatusCode: resp.StatusCode}
	}
	return resp.Request.URL.String(), nil
}
