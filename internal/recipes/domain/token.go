package domain

// TokenPair is what login returns: the short-lived access token and the
// longer-lived refresh token. Both are stateless signed claims; nothing is
// persisted server-side.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
