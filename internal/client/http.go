package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/joshradin/federeddit/internal/auth"
)

// HTTPClient talks to a users service over HTTP. Every call is bounded
// by the underlying http.Client timeout in addition to ctx, so a
// hanging authority can never stall a caller indefinitely.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)
var _ auth.TokenValidator = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// LogIn posts Basic credentials to /user/login and extracts the bearer
// token from the Authorization response header.
func (c *HTTPClient) LogIn(ctx context.Context, identifier string, password []byte) (*AuthenticatedUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/login", nil)
	if err != nil {
		return nil, err
	}
	credentials := base64.StdEncoding.EncodeToString(append([]byte(identifier+":"), password...))
	req.Header.Set("Authorization", "Basic "+credentials)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrAuthorityUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	}

	token, err := auth.ParseAuthorizationHeader(resp.Header.Get("Authorization"))
	if err != nil {
		return nil, fmt.Errorf("login response carried no bearer token: %w", err)
	}

	var info struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}

	return &AuthenticatedUser{Username: info.Username, Email: info.Email, Bearer: token}, nil
}

// CreateUser registers a new account via /user/create.
func (c *HTTPClient) CreateUser(ctx context.Context, email, username string, password []byte) error {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"username": username,
		"password": string(password),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/create", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", auth.ErrAuthorityUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusConflict:
		return ErrAlreadyExists
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %s: %s", ErrRejected, resp.Status, strings.TrimSpace(string(msg)))
	}
}

// ValidateToken forwards the bearer token to the authority's
// validation endpoint. Transport failures and timeouts surface as
// auth.ErrAuthorityUnavailable, distinct from a genuine rejection.
func (c *HTTPClient) ValidateToken(ctx context.Context, token auth.BearerToken) (time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return time.Time{}, err
	}
	req.Header.Set("Authorization", token.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", auth.ErrAuthorityUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return time.Time{}, ErrUnauthorized
	default:
		return time.Time{}, fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	}

	var expires time.Time
	if err := json.NewDecoder(resp.Body).Decode(&expires); err != nil {
		return time.Time{}, fmt.Errorf("decoding validation response: %w", err)
	}
	return expires, nil
}
