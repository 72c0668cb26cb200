package recipesdk

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the refresh endpoint rejects the refresh
// token. The only recovery is a fresh login.
var ErrUnauthorized = errors.New("recipesdk: unauthorized")

// codeUnauthenticated is the extension code the API attaches to auth errors.
const codeUnauthenticated = "UNAUTHENTICATED"

// GraphQLError is a single error from the GraphQL response envelope.
type GraphQLError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e *GraphQLError) Error() string {
	return e.Message
}

// IsUnauthenticated reports whether the error carries the UNAUTHENTICATED
// extension code, meaning the access token was missing, invalid, or expired.
func (e *GraphQLError) IsUnauthenticated() bool {
	return e.Extensions["code"] == codeUnauthenticated
}

// APIError wraps a non-2xx HTTP response that is not a GraphQL error
// envelope, such as a 502 from a proxy in front of the service.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("recipesdk: unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthenticated reports whether err is a GraphQL error with the
// UNAUTHENTICATED code.
func IsUnauthenticated(err error) bool {
	var gqlErr *GraphQLError
	return errors.As(err, &gqlErr) && gqlErr.IsUnauthenticated()
}
