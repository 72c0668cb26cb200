package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/recipebook/internal/recipes/graph"
	"github.com/aussiebroadwan/recipebook/internal/recipes/service"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
	"github.com/aussiebroadwan/recipebook/pkg/httpx"
	"github.com/aussiebroadwan/recipebook/pkg/slogx"

	_ "github.com/aussiebroadwan/recipebook/api/recipes" // Swagger docs
	gqlhandler "github.com/graphql-go/handler"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	// GraphiQL enables the in-browser IDE on GET /graphql. Development only.
	GraphiQL bool

	store         store.Store
	UserService   *service.UserService
	RecipeService *service.RecipeService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(),
	}

	return r
}

func (r *Router) ApplyRoutes() error {
	if err := r.registerGraphQL(); err != nil {
		return err
	}
	r.registerTokens()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	return nil
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Recipe Book API
//	@version		0.1.0
//	@description	Personal recipe management service. All recipe operations go through
//	@description	the GraphQL endpoint at POST /graphql; the REST surface covers token
//	@description	refresh and health probes.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/recipebook
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerGraphQL() error {
	schema, err := graph.NewSchema(&graph.Resolver{
		Users:   r.UserService,
		Recipes: r.RecipeService,
	})
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	gql := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: r.GraphiQL,
	})

	// The bearer token is resolved once per request here; resolvers only
	// read the outcome from the context.
	r.Mux.Handle("/graphql",
		httpx.Chain(gql,
			graph.Authn(r.UserService),
		),
	)
	return nil
}

func (r *Router) registerTokens() {
	h := &RefreshHandler{UserService: r.UserService}
	r.Mux.Handle("POST /refresh_token", h)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
