package recipesdk

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

// SDKClient is a client for the recipe book service. It provides access to
// the unauthenticated operations (register, login, refresh, health) and can
// create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new recipe book client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

const registerMutation = `
	mutation ($username: String!, $email: String!, $password: String!) {
		register(username: $username, email: $email, password: $password) {
			id
			username
			email
		}
	}`

// Register creates a new account. The account is not logged in; call Login
// to obtain tokens.
func (c *SDKClient) Register(ctx context.Context, username, email, password string) (*User, error) {
	data, err := c.doGraphQL(ctx, "", registerMutation, map[string]any{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeField(data, "register", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

const loginMutation = `
	mutation ($username: String!, $password: String!) {
		login(username: $username, password: $password) {
			token
			refreshToken
		}
	}`

// Login authenticates with username and password and returns a Session
// holding both tokens.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	data, err := c.doGraphQL(ctx, "", loginMutation, map[string]any{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var payload AuthPayload
	if err := decodeField(data, "login", &payload); err != nil {
		return nil, err
	}
	return c.NewSessionFromTokens(payload.Token, payload.RefreshToken), nil
}

// NewSessionFromTokens creates an authenticated session from existing tokens,
// for example tokens persisted from a previous login. The session still
// refreshes the access token automatically when the API rejects it.
func (c *SDKClient) NewSessionFromTokens(accessToken, refreshToken string) *Session {
	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
	}
}

// RefreshAccessToken exchanges a refresh token for a new access token via
// POST /refresh_token. The refresh token itself is not rotated and stays
// valid. Returns ErrUnauthorized if the server rejects the token.
func (c *SDKClient) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	body, err := json.Marshal(RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/refresh_token"), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out RefreshResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		return out.AccessToken, nil
	case http.StatusUnauthorized:
		return "", ErrUnauthorized
	default:
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}
}

// Livez checks the liveness endpoint.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz checks the readiness endpoint, including store connectivity.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var out HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doGraphQL posts a GraphQL operation and returns the data map. An empty
// token means the request is unauthenticated. The first error of the
// response envelope is returned as a *GraphQLError.
func (c *SDKClient) doGraphQL(
	ctx context.Context,
	token, query string,
	variables map[string]any,
) (map[string]any, error) {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/graphql"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return nil, envelope.Errors[0]
	}
	return envelope.Data, nil
}

// decodeField re-marshals a single field of the data map into target.
func decodeField(data map[string]any, field string, target any) error {
	raw, ok := data[field]
	if !ok || raw == nil {
		return fmt.Errorf("response missing %q field", field)
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to re-encode %q field: %w", field, err)
	}
	if err := json.Unmarshal(buf, target); err != nil {
		return fmt.Errorf("failed to decode %q field: %w", field, err)
	}
	return nil
}
