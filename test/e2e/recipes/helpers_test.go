package recipes_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	httpapi "github.com/aussiebroadwan/recipebook/internal/recipes/http"
	"github.com/aussiebroadwan/recipebook/internal/recipes/service"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store/drivers/jsonfile"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store/drivers/sqlite"
	"github.com/aussiebroadwan/recipebook/pkg/jwtx"
	"github.com/aussiebroadwan/recipebook/pkg/recipesdk"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for recipe service end-to-end tests. The service runs
 * in-process behind httptest so the full HTTP surface is exercised without
 * container infrastructure, and every scenario runs against both store
 * backends.
 */

const (
	testIssuer = "recipebook-test"
	testSecret = "0123456789abcdef0123456789abcdef"
)

// backends lists the store implementations every scenario runs against.
var backends = []string{"sqlite", "jsonfile"}

// newBackendStore builds a fresh store of the named backend rooted in a
// per-test temp directory.
func newBackendStore(t *testing.T, backend string) store.Store {
	t.Helper()

	switch backend {
	case "sqlite":
		st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "recipes.db"))
		require.NoError(t, err)
		require.NoError(t, st.ApplyMigrations())
		t.Cleanup(func() { _ = st.Close() })
		return st
	case "jsonfile":
		st, err := jsonfile.NewStore(t.TempDir())
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })
		return st
	default:
		t.Fatalf("unknown backend %q", backend)
		return nil
	}
}

// setupService starts the full service stack in-process and returns an SDK
// client pointed at it.
func setupService(t *testing.T, backend string) *recipesdk.SDKClient {
	t.Helper()

	st := newBackendStore(t, backend)

	signer, err := jwtx.NewHS256([]byte(testSecret), testIssuer)
	require.NoError(t, err)

	tokens := &service.TokenService{
		Tokens:     signer,
		Issuer:     testIssuer,
		AccessTTL:  jwtx.DefaultAccessTokenTTL,
		RefreshTTL: jwtx.DefaultRefreshTokenTTL,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := httpapi.NewRouter("test", st, logger)
	router.UserService = &service.UserService{Store: st, Tokens: tokens}
	router.RecipeService = &service.RecipeService{Store: st}
	require.NoError(t, router.ApplyRoutes())

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return recipesdk.NewSDKClient(srv.URL)
}

// registerAndLogin creates an account and returns an authenticated session.
func registerAndLogin(t *testing.T, client *recipesdk.SDKClient, username, email, password string) *recipesdk.Session {
	t.Helper()

	user, err := client.Register(t.Context(), username, email, password)
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	session, err := client.Login(t.Context(), username, password)
	require.NoError(t, err)
	return session
}

// soupInput is the recipe used across scenarios.
func soupInput() recipesdk.RecipeInput {
	return recipesdk.RecipeInput{
		Title:        "Soup",
		Ingredients:  "2 carrots, 1 onion",
		Instructions: "Chop and simmer for an hour.",
		Category:     "Dinner",
		Date:         "2025-03-01",
	}
}
