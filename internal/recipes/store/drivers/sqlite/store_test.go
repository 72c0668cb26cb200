package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/recipebook/internal/recipes/domain"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
	"github.com/aussiebroadwan/recipebook/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testUser(username, email string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    time.Now().UTC(),
	}
}

func testRecipe(ownerID, title string) domain.Recipe {
	now := time.Now().UTC()
	return domain.Recipe{
		ID:           idx.New().String(),
		Title:        title,
		Ingredients:  "2 carrots, 1 onion",
		Instructions: "Chop and simmer for an hour.",
		Category:     "Soup",
		Date:         "2025-03-01",
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := testUser("alice", "alice@example.com")
	require.NoError(t, s.Users().Create(ctx, alice))

	t.Run("lookups", func(t *testing.T) {
		byID, err := s.Users().GetByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, alice.Username, byID.Username)

		byName, err := s.Users().GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byName.ID)

		byEmail, err := s.Users().GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byEmail.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.Users().GetByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := s.Users().Create(ctx, testUser("alice", "other@example.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := s.Users().Create(ctx, testUser("bob", "alice@example.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestRecipesRepo_OwnershipScoping(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := testUser("alice", "alice@example.com")
	bob := testUser("bob", "bob@example.com")
	require.NoError(t, s.Users().Create(ctx, alice))
	require.NoError(t, s.Users().Create(ctx, bob))

	soup := testRecipe(alice.ID, "Soup")
	require.NoError(t, s.Recipes().Create(ctx, soup))

	t.Run("owner reads own recipe", func(t *testing.T) {
		got, err := s.Recipes().GetOwned(ctx, soup.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, soup.Title, got.Title)
		require.Equal(t, alice.ID, got.OwnerID)
	})

	t.Run("other user cannot read it", func(t *testing.T) {
		_, err := s.Recipes().GetOwned(ctx, soup.ID, bob.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("other user cannot update it", func(t *testing.T) {
		_, err := s.Recipes().UpdateOwned(ctx, soup.ID, bob.ID, domain.RecipeFields{
			Title: "Stolen", Ingredients: "x", Instructions: "x", Category: "x", Date: "x",
		})
		require.ErrorIs(t, err, store.ErrNotFound)

		// Unchanged for the owner.
		got, err := s.Recipes().GetOwned(ctx, soup.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "Soup", got.Title)
	})

	t.Run("other user cannot delete it", func(t *testing.T) {
		require.ErrorIs(t, s.Recipes().DeleteOwned(ctx, soup.ID, bob.ID), store.ErrNotFound)

		_, err := s.Recipes().GetOwned(ctx, soup.ID, alice.ID)
		require.NoError(t, err)
	})

	t.Run("listing is owner filtered", func(t *testing.T) {
		require.NoError(t, s.Recipes().Create(ctx, testRecipe(bob.ID, "Bob's Pie")))

		mine, err := s.Recipes().ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, soup.ID, mine[0].ID)
	})
}

func TestRecipesRepo_UpdateReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := testUser("alice", "alice@example.com")
	require.NoError(t, s.Users().Create(ctx, alice))

	rec := testRecipe(alice.ID, "Soup")
	require.NoError(t, s.Recipes().Create(ctx, rec))

	updated, err := s.Recipes().UpdateOwned(ctx, rec.ID, alice.ID, domain.RecipeFields{
		Title:        "Better Soup",
		Ingredients:  "3 carrots",
		Instructions: "Simmer longer.",
		Category:     "Dinner",
		Date:         "2025-03-02",
	})
	require.NoError(t, err)
	require.Equal(t, "Better Soup", updated.Title)
	require.Equal(t, "3 carrots", updated.Ingredients)
	require.Equal(t, "Dinner", updated.Category)
	require.Equal(t, rec.OwnerID, updated.OwnerID, "ownership is immutable")
	require.Equal(t, rec.ID, updated.ID)
}

func TestRecipesRepo_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	alice := testUser("alice", "alice@example.com")
	require.NoError(t, s.Users().Create(ctx, alice))

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		require.NoError(t, s.Recipes().Create(ctx, testRecipe(alice.ID, title)))
	}

	got, err := s.Recipes().ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, title := range titles {
		require.Equal(t, title, got[i].Title)
	}
}
