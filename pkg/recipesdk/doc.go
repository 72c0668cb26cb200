// Package recipesdk provides a Go client for the recipe book service.
//
// The SDKClient handles unauthenticated operations: registering, logging in,
// refreshing access tokens, and health checks. Login returns a Session for
// the authenticated recipe operations.
//
//	client := recipesdk.NewSDKClient("http://localhost:8080")
//
//	user, err := client.Register(ctx, "alice", "alice@example.com", "secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	session, err := client.Login(ctx, "alice", "secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	recipe, err := session.AddRecipe(ctx, recipesdk.RecipeInput{
//		Title:        "Soup",
//		Ingredients:  "2 carrots, 1 onion",
//		Instructions: "Chop and simmer for an hour.",
//		Category:     "Dinner",
//		Date:         "2025-03-01",
//	})
//
// Sessions refresh the access token automatically: when the API answers with
// an UNAUTHENTICATED error the session calls POST /refresh_token once and
// retries. If the refresh token is also rejected the call returns
// ErrUnauthorized and the caller must log in again.
package recipesdk
