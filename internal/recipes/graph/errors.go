package graph

// AuthenticationError is surfaced for missing, invalid, or expired bearer
// tokens. It carries a stable machine-readable extension code so clients can
// distinguish "log in again" from ordinary errors.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// Extensions implements gqlerrors.ExtendedError so the code appears in the
// GraphQL error response.
func (e *AuthenticationError) Extensions() map[string]any {
	return map[string]any{"code": "UNAUTHENTICATED"}
}

// Externally visible messages. These are part of the API contract: login
// failures and ownership failures are deliberately indistinguishable from
// their respective "not found" cases.
const (
	msgLoginRequired      = "You must be logged in"
	msgInvalidToken       = "Invalid token"
	msgUsernameExists     = "Username already exists"
	msgEmailExists        = "Email already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgRecipeNotFound     = "Recipe not found or not authorized"
	msgInternalError      = "Internal server error"
)
