package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/recipebook/internal/recipes/domain"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
	"github.com/aussiebroadwan/recipebook/pkg/idx"
)

// ErrRecipeNotFound deliberately collapses "doesn't exist" and "exists but
// isn't yours" into one error so the API never confirms a record's existence
// to a non-owner.
var ErrRecipeNotFound = errors.New("recipe_not_found")

type RecipeService struct {
	Store store.Store
}

// List returns all recipes owned by the user, in store-native order.
func (s *RecipeService) List(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	return s.Store.Recipes().ListByOwner(ctx, ownerID)
}

// Get returns the recipe matching id and owner, or ErrRecipeNotFound.
func (s *RecipeService) Get(ctx context.Context, id, ownerID string) (domain.Recipe, error) {
	rec, err := s.Store.Recipes().GetOwned(ctx, id, ownerID)
	if err != nil {
		return domain.Recipe{}, mapRecipeErr(err)
	}
	return rec, nil
}

// Add persists a new recipe owned by ownerID.
func (s *RecipeService) Add(ctx context.Context, ownerID string, fields domain.RecipeFields) (domain.Recipe, error) {
	now := time.Now().UTC()
	rec := domain.Recipe{
		ID:           idx.New().String(),
		Title:        fields.Title,
		Ingredients:  fields.Ingredients,
		Instructions: fields.Instructions,
		Category:     fields.Category,
		Date:         fields.Date,
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Recipes().Create(ctx, rec); err != nil {
		return domain.Recipe{}, err
	}
	return rec, nil
}

// Update replaces all caller-supplied fields of an owned recipe.
func (s *RecipeService) Update(ctx context.Context, id, ownerID string, fields domain.RecipeFields) (domain.Recipe, error) {
	rec, err := s.Store.Recipes().UpdateOwned(ctx, id, ownerID, fields)
	if err != nil {
		return domain.Recipe{}, mapRecipeErr(err)
	}
	return rec, nil
}

// Delete removes an owned recipe.
func (s *RecipeService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.Store.Recipes().DeleteOwned(ctx, id, ownerID); err != nil {
		return mapRecipeErr(err)
	}
	return nil
}

func mapRecipeErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrRecipeNotFound
	}
	return err
}
