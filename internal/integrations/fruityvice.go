package integrations

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/terraincognita07/nutritrack/internal/models"
)

const DefaultFruityViceBaseURL = "https://www.fruityvice.com/api"

type FruityViceClient struct {
	baseURL string
	client  *http.Client
}

func NewFruityViceClient(baseURL string, timeout time.Duration) *FruityViceClient {
	return &FruityViceClient{
		baseURL: trimBaseURL(baseURL, DefaultFruityViceBaseURL),
		client:  newHTTPClient(timeout),
	}
}

// FruitByName looks a fruit up by lowercased name. An unknown fruit is (zero, false, nil).
func (client *FruityViceClient) FruitByName(ctx context.Context, name string) (models.Fruit, bool, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return models.Fruit{}, false, nil
	}

	endpoint := fmt.Sprintf("%s/fruit/%s", client.baseURL, url.PathEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Fruit{}, false, fmt.Errorf("fruityvice build request: %w", err)
	}

	var fruit models.Fruit
	err = doJSON(client.client, "fruityvice", req, &fruit)
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return models.Fruit{}, false, nil
	}
	if err != nil {
		return models.Fruit{}, false, err
	}
	return fruit, true, nil
}
