package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"anonbox/models"
)

// Client fetches profiles from the user service over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type userResponse struct {
	User *models.Profile `json:"user"`
}

func (c *Client) FetchProfile(ctx context.Context, username string) (models.Profile, bool, error) {
	reqURL := c.baseURL + "/api/users/" + url.PathEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.Profile{}, false, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Profile{}, false, fmt.Errorf("user service: %w", err)
	}
	defer resp.Body.Close()

	// Unknown username is a terminal state, not an error.
	if resp.StatusCode == http.StatusNotFound {
		return models.Profile{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return models.Profile{}, false, fmt.Errorf("user service: unexpected status %s", resp.Status)
	}

	var body userResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Profile{}, false, fmt.Errorf("user service: decode: %w", err)
	}
	if body.User == nil || body.User.Username == "" {
		return models.Profile{}, false, nil
	}

	return *body.User, true, nil
}
