package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/recipebook/internal/recipes/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// jsonfile) implement this. It exposes sub-repositories to keep concerns
// tidy and testable. There are no multi-record transactions: every operation
// touches a single record (or a single owner-filtered scan), so per-call
// atomicity is all any driver has to provide.
type Store interface {
	Users() Users
	Recipes() Recipes

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetByID returns a user by id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByUsername is used during login and duplicate checks.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// GetByEmail is used for the duplicate-email check at registration.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts a new user (id is provided by the service via ULID).
	// Returns ErrAlreadyExists if the username or email is taken.
	Create(ctx context.Context, u domain.User) error
}

type Recipes interface {
	// GetOwned returns the recipe matching id AND owner. A recipe that exists
	// but belongs to someone else is indistinguishable from one that does not
	// exist: both are ErrNotFound. This is the authorization boundary.
	GetOwned(ctx context.Context, id, ownerID string) (domain.Recipe, error)

	// ListByOwner returns all recipes owned by ownerID in store-native order.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error)

	// Create inserts a new recipe.
	Create(ctx context.Context, r domain.Recipe) error

	// UpdateOwned replaces all caller-supplied fields of the recipe matching
	// id AND owner, returning the updated record or ErrNotFound.
	UpdateOwned(ctx context.Context, id, ownerID string, fields domain.RecipeFields) (domain.Recipe, error)

	// DeleteOwned removes the recipe matching id AND owner, or ErrNotFound.
	DeleteOwned(ctx context.Context, id, ownerID string) error
}
