package domain

import "time"

// Recipe is a single recipe record. Every recipe is owned by exactly one
// user for its entire lifetime; ownership is set at creation and immutable.
type Recipe struct {
	ID           string
	Title        string
	Ingredients  string // free text
	Instructions string // free text
	Category     string
	Date         string // user-entered date string, stored verbatim
	OwnerID      string // references User.ID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecipeFields are the caller-supplied fields of a recipe, separated from
// the identity/ownership fields the service assigns. Updates replace all of
// them at once.
type RecipeFields struct {
	Title        string
	Ingredients  string
	Instructions string
	Category     string
	Date         string
}
