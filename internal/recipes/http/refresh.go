package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/recipebook/internal/recipes/service"
	"github.com/aussiebroadwan/recipebook/pkg/httpx"
	"github.com/aussiebroadwan/recipebook/pkg/recipesdk"
	"github.com/aussiebroadwan/recipebook/pkg/slogx"
)

type RefreshHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Refresh Access Token Endpoint
//	@Description	Exchange a valid refresh token for a new access token
//	@Description	The refresh token is not rotated and stays valid for its full lifetime
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Param			request	body		recipesdk.RefreshRequest	true	"Refresh token from login"
//	@Success		200		{object}	recipesdk.RefreshResponse	"accessToken"
//	@Failure		401		"Missing, malformed, expired, or unknown refresh token"
//	@Router			/refresh_token [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Every failure is a bare 401. The body never says whether the token was
	// malformed, expired, or issued to a user that no longer exists.
	var req recipesdk.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.RefreshToken)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	accessToken, err := h.UserService.Tokens.IssueAccessToken(user.ID)
	if err != nil {
		log.Error("failed to issue access token", "err", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, recipesdk.RefreshResponse{AccessToken: accessToken})
}
