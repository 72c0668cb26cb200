package recipesdk

// User is the public shape of an account. The password hash is never part of
// any API response.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Recipe is the public shape of a recipe. Ownership is implicit: the API only
// ever returns recipes belonging to the caller, so no owner field is exposed.
type Recipe struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	Category     string `json:"category"`
	Date         string `json:"date"`
}

// RecipeInput holds the writable recipe fields for add and update calls.
// Updates replace every field; there is no partial patch.
type RecipeInput struct {
	Title        string
	Ingredients  string
	Instructions string
	Category     string
	Date         string
}

// AuthPayload is the login response: a short-lived access token plus a
// long-lived refresh token.
type AuthPayload struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest is the body of POST /refresh_token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse is the success body of POST /refresh_token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// HealthResponse is returned by the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies for /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}

// graphQLRequest is the wire shape of a GraphQL POST body.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLResponse is the wire shape of a GraphQL response envelope.
type graphQLResponse struct {
	Data   map[string]any  `json:"data"`
	Errors []*GraphQLError `json:"errors,omitempty"`
}
