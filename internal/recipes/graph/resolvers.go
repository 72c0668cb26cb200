package graph

import (
	"errors"

	"github.com/aussiebroadwan/recipebook/internal/recipes/domain"
	"github.com/aussiebroadwan/recipebook/internal/recipes/service"
	"github.com/aussiebroadwan/recipebook/pkg/slogx"
	"github.com/graphql-go/graphql"
)

// Resolver holds the services the schema resolvers delegate to. Resolvers do
// no business logic themselves: they pull the acting user from the request
// context, call the service, and map service errors to the API's external
// messages.
type Resolver struct {
	Users   *service.UserService
	Recipes *service.RecipeService
}

func (r *Resolver) getRecipes(p graphql.ResolveParams) (any, error) {
	user, err := CurrentUser(p.Context)
	if err != nil {
		return nil, err
	}

	list, err := r.Recipes.List(p.Context, user.ID)
	if err != nil {
		return nil, r.publicErr(p, err)
	}
	return list, nil
}

func (r *Resolver) getRecipe(p graphql.ResolveParams) (any, error) {
	user, err := CurrentUser(p.Context)
	if err != nil {
		return nil, err
	}

	id, _ := p.Args["id"].(string)
	rec, err := r.Recipes.Get(p.Context, id, user.ID)
	if err != nil {
		// Absent and not-owned are both null, not an error: the response
		// must not reveal whether the id exists at all.
		if errors.Is(err, service.ErrRecipeNotFound) {
			return nil, nil
		}
		return nil, r.publicErr(p, err)
	}
	return rec, nil
}

func (r *Resolver) register(p graphql.ResolveParams) (any, error) {
	username, _ := p.Args["username"].(string)
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	u, err := r.Users.Register(p.Context, username, email, password)
	if err != nil {
		return nil, r.publicErr(p, err)
	}
	return u, nil
}

func (r *Resolver) login(p graphql.ResolveParams) (any, error) {
	username, _ := p.Args["username"].(string)
	password, _ := p.Args["password"].(string)

	pair, err := r.Users.Login(p.Context, username, password)
	if err != nil {
		return nil, r.publicErr(p, err)
	}
	return pair, nil
}

func (r *Resolver) addRecipe(p graphql.ResolveParams) (any, error) {
	user, err := CurrentUser(p.Context)
	if err != nil {
		return nil, err
	}

	rec, err := r.Recipes.Add(p.Context, user.ID, recipeFieldsFromArgs(p.Args))
	if err != nil {
		return nil, r.publicErr(p, err)
	}
	return rec, nil
}

func (r *Resolver) updateRecipe(p graphql.ResolveParams) (any, error) {
	user, err := CurrentUser(p.Context)
	if err != nil {
		return nil, err
	}

	id, _ := p.Args["id"].(string)
	rec, err := r.Recipes.Update(p.Context, id, user.ID, recipeFieldsFromArgs(p.Args))
	if err != nil {
		return nil, r.publicErr(p, err)
	}
	return rec, nil
}

func (r *Resolver) deleteRecipe(p graphql.ResolveParams) (any, error) {
	user, err := CurrentUser(p.Context)
	if err != nil {
		return nil, err
	}

	id, _ := p.Args["id"].(string)
	if err := r.Recipes.Delete(p.Context, id, user.ID); err != nil {
		return nil, r.publicErr(p, err)
	}
	return true, nil
}

func recipeFieldsFromArgs(args map[string]any) domain.RecipeFields {
	f := domain.RecipeFields{}
	f.Title, _ = args["title"].(string)
	f.Ingredients, _ = args["ingredients"].(string)
	f.Instructions, _ = args["instructions"].(string)
	f.Category, _ = args["category"].(string)
	f.Date, _ = args["date"].(string)
	return f
}

// publicErr maps service errors to the messages the API exposes. Anything
// unexpected is logged and replaced with a generic message so internals
// never leak into responses.
func (r *Resolver) publicErr(p graphql.ResolveParams, err error) error {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return errors.New(msgUsernameExists)
	case errors.Is(err, service.ErrEmailTaken):
		return errors.New(msgEmailExists)
	case errors.Is(err, service.ErrInvalidCredentials):
		return errors.New(msgInvalidCredentials)
	case errors.Is(err, service.ErrRecipeNotFound):
		return errors.New(msgRecipeNotFound)
	default:
		slogx.FromContext(p.Context).Error("resolver failed", "err", err)
		return errors.New(msgInternalError)
	}
}
