package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/recipebook/internal/recipes/domain"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
	"github.com/aussiebroadwan/recipebook/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
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
		require.Equal(t, "alice", byID.Username)

		byName, err := s.Users().GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byName.ID)

		byEmail, err := s.Users().GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byEmail.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.Users().GetByID(ctx, "missing")
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
		require.Equal(t, "Soup", got.Title)
	})

	t.Run("other user cannot read update or delete", func(t *testing.T) {
		_, err := s.Recipes().GetOwned(ctx, soup.ID, bob.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Recipes().UpdateOwned(ctx, soup.ID, bob.ID, domain.RecipeFields{Title: "Stolen"})
		require.ErrorIs(t, err, store.ErrNotFound)

		require.ErrorIs(t, s.Recipes().DeleteOwned(ctx, soup.ID, bob.ID), store.ErrNotFound)

		got, err := s.Recipes().GetOwned(ctx, soup.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "Soup", got.Title, "denied mutations leave the record unchanged")
	})

	t.Run("listing is owner filtered and insertion ordered", func(t *testing.T) {
		require.NoError(t, s.Recipes().Create(ctx, testRecipe(bob.ID, "Bob's Pie")))
		require.NoError(t, s.Recipes().Create(ctx, testRecipe(alice.ID, "Stew")))

		mine, err := s.Recipes().ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		require.Equal(t, "Soup", mine[0].Title)
		require.Equal(t, "Stew", mine[1].Title)
	})
}

func TestRecipesRepo_DeleteRewritesCollection(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewStore(dir)
	require.NoError(t, err)

	alice := testUser("alice", "alice@example.com")
	require.NoError(t, s.Users().Create(ctx, alice))

	keep := testRecipe(alice.ID, "Keep")
	drop := testRecipe(alice.ID, "Drop")
	require.NoError(t, s.Recipes().Create(ctx, keep))
	require.NoError(t, s.Recipes().Create(ctx, drop))

	require.NoError(t, s.Recipes().DeleteOwned(ctx, drop.ID, alice.ID))

	// The on-disk collection is the whole remaining array.
	data, err := os.ReadFile(filepath.Join(dir, recipesFile))
	require.NoError(t, err)

	var records []recipeRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	require.Equal(t, keep.ID, records[0].ID)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := NewStore(dir)
	require.NoError(t, err)

	alice := testUser("alice", "alice@example.com")
	require.NoError(t, s1.Users().Create(ctx, alice))
	require.NoError(t, s1.Recipes().Create(ctx, testRecipe(alice.ID, "Soup")))
	require.NoError(t, s1.Close())

	s2, err := NewStore(dir)
	require.NoError(t, err)

	got, err := s2.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)

	list, err := s2.Recipes().ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
