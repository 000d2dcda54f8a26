package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"anonbox/models"
)

// ErrInvalidCredentials is the only error the login flow ever sees. The real
// cause (network failure, bad status, malformed body) is logged, never
// surfaced, so callers cannot leak internal failure detail to the end user.
var ErrInvalidCredentials = errors.New("invalid credentials")

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authorizer delegates credential verification to an external endpoint.
type Authorizer struct {
	url    string
	client *http.Client
}

func NewAuthorizer(url string, timeout time.Duration) *Authorizer {
	return &Authorizer{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Authorize POSTs the credential pair and returns the authenticated user.
// The response is only trusted when the status is 2xx and the payload
// carries both id and username.
func (a *Authorizer) Authorize(ctx context.Context, username, password string) (models.AuthedUser, error) {
	if username == "" || password == "" {
		return models.AuthedUser{}, ErrInvalidCredentials
	}

	reqBody, err := json.Marshal(credentials{Username: username, Password: password})
	if err != nil {
		log.Printf("authorize: marshal failed: %v", err)
		return models.AuthedUser{}, ErrInvalidCredentials
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewBuffer(reqBody))
	if err != nil {
		log.Printf("authorize: build request failed: %v", err)
		return models.AuthedUser{}, ErrInvalidCredentials
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("authorize: request failed: %v", err)
		return models.AuthedUser{}, ErrInvalidCredentials
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("authorize: rejected with status %s", resp.Status)
		return models.AuthedUser{}, ErrInvalidCredentials
	}

	var user models.AuthedUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		log.Printf("authorize: decode failed: %v", err)
		return models.AuthedUser{}, ErrInvalidCredentials
	}
	if user.ID == "" || user.Username == "" {
		log.Printf("authorize: response missing id or username")
		return models.AuthedUser{}, ErrInvalidCredentials
	}

	return user, nil
}
