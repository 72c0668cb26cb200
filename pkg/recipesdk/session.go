package recipesdk

import (
	"context"
	"fmt"
	"sync"
)

// Session represents an authenticated session. When the API rejects the
// access token the session refreshes it once via the refresh endpoint and
// retries the request; if the refresh token is also rejected the caller
// gets ErrUnauthorized and must log in again.
type Session struct {
	client *SDKClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the refresh token the session was created with. It
// never changes; the refresh endpoint does not rotate it.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

const getRecipesQuery = `
	{
		getRecipes {
			id
			title
			ingredients
			instructions
			category
			date
		}
	}`

// Recipes lists the caller's recipes in creation order.
func (s *Session) Recipes(ctx context.Context) ([]Recipe, error) {
	data, err := s.doGraphQL(ctx, getRecipesQuery, nil)
	if err != nil {
		return nil, err
	}

	var recipes []Recipe
	if err := decodeField(data, "getRecipes", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

const getRecipeQuery = `
	query ($id: ID!) {
		getRecipe(id: $id) {
			id
			title
			ingredients
			instructions
			category
			date
		}
	}`

// Recipe fetches one recipe by id. Returns (nil, nil) when the recipe does
// not exist or belongs to another user; the API does not distinguish the
// two cases.
func (s *Session) Recipe(ctx context.Context, id string) (*Recipe, error) {
	data, err := s.doGraphQL(ctx, getRecipeQuery, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if data["getRecipe"] == nil {
		return nil, nil
	}

	var recipe Recipe
	if err := decodeField(data, "getRecipe", &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

const addRecipeMutation = `
	mutation ($title: String!, $ingredients: String!, $instructions: String!, $category: String!, $date: String!) {
		addRecipe(title: $title, ingredients: $ingredients, instructions: $instructions, category: $category, date: $date) {
			id
			title
			ingredients
			instructions
			category
			date
		}
	}`

// AddRecipe creates a recipe owned by the caller.
func (s *Session) AddRecipe(ctx context.Context, input RecipeInput) (*Recipe, error) {
	data, err := s.doGraphQL(ctx, addRecipeMutation, inputVars(input))
	if err != nil {
		return nil, err
	}

	var recipe Recipe
	if err := decodeField(data, "addRecipe", &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

const updateRecipeMutation = `
	mutation ($id: ID!, $title: String!, $ingredients: String!, $instructions: String!, $category: String!, $date: String!) {
		updateRecipe(id: $id, title: $title, ingredients: $ingredients, instructions: $instructions, category: $category, date: $date) {
			id
			title
			ingredients
			instructions
			category
			date
		}
	}`

// UpdateRecipe replaces every field of an owned recipe.
func (s *Session) UpdateRecipe(ctx context.Context, id string, input RecipeInput) (*Recipe, error) {
	vars := inputVars(input)
	vars["id"] = id

	data, err := s.doGraphQL(ctx, updateRecipeMutation, vars)
	if err != nil {
		return nil, err
	}

	var recipe Recipe
	if err := decodeField(data, "updateRecipe", &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

const deleteRecipeMutation = `
	mutation ($id: ID!) {
		deleteRecipe(id: $id)
	}`

// DeleteRecipe deletes an owned recipe.
func (s *Session) DeleteRecipe(ctx context.Context, id string) error {
	data, err := s.doGraphQL(ctx, deleteRecipeMutation, map[string]any{"id": id})
	if err != nil {
		return err
	}

	var ok bool
	if err := decodeField(data, "deleteRecipe", &ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("delete was not acknowledged")
	}
	return nil
}

// doGraphQL executes an authenticated operation, refreshing the access token
// once if the API reports it as invalid.
func (s *Session) doGraphQL(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	data, err := s.client.doGraphQL(ctx, s.AccessToken(), query, variables)
	if err == nil || !IsUnauthenticated(err) {
		return data, err
	}
	if s.RefreshToken() == "" {
		return data, err
	}

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	return s.client.doGraphQL(ctx, s.AccessToken(), query, variables)
}

func (s *Session) refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.client.RefreshAccessToken(ctx, s.refreshToken)
	if err != nil {
		return err
	}
	s.accessToken = token
	return nil
}

func inputVars(input RecipeInput) map[string]any {
	return map[string]any{
		"title":        input.Title,
		"ingredients":  input.Ingredients,
		"instructions": input.Instructions,
		"category":     input.Category,
		"date":         input.Date,
	}
}
