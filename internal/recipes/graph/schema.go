package graph

import "github.com/graphql-go/graphql"

// GraphQL object types. Note the User type never exposes the password hash,
// and the Recipe type never exposes the owner id; ownership is implicit in
// whose token you call with.

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var recipeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Recipe",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"ingredients":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"instructions": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"category":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"date":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"token":        &graphql.Field{Type: graphql.String},
		"refreshToken": &graphql.Field{Type: graphql.String},
	},
})

func recipeFieldArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"title":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"ingredients":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"instructions": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"category":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		"date":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}
}

// NewSchema builds the executable schema wired to the resolver set.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getRecipes": &graphql.Field{
				Type:    graphql.NewList(recipeType),
				Resolve: r.getRecipes,
			},
			"getRecipe": &graphql.Field{
				Type: recipeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.getRecipe,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.register,
			},
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.login,
			},
			"addRecipe": &graphql.Field{
				Type:    recipeType,
				Args:    recipeFieldArgs(),
				Resolve: r.addRecipe,
			},
			"updateRecipe": &graphql.Field{
				Type: recipeType,
				Args: mergeArgs(graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				}, recipeFieldArgs()),
				Resolve: r.updateRecipe,
			},
			"deleteRecipe": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteRecipe,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func mergeArgs(args ...graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	out := graphql.FieldConfigArgument{}
	for _, set := range args {
		for name, cfg := range set {
			out[name] = cfg
		}
	}
	return out
}
