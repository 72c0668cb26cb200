package jsonfile

import (
	"context"
	"time"

	"github.com/aussiebroadwan/recipebook/internal/recipes/domain"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
)

type recipeRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Category     string    `json:"category"`
	Date         string    `json:"date"`
	OwnerID      string    `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type recipesRepo struct {
	s *Store
}

func (r *recipesRepo) GetOwned(ctx context.Context, id, ownerID string) (domain.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := r.loadAll()
	if err != nil {
		return domain.Recipe{}, err
	}

	for _, rec := range records {
		if rec.ID == id && rec.OwnerID == ownerID {
			return toDomain(rec), nil
		}
	}
	return domain.Recipe{}, store.ErrNotFound
}

func (r *recipesRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := r.loadAll()
	if err != nil {
		return nil, err
	}

	// Append order is insertion order, preserved as-is.
	var out []domain.Recipe
	for _, rec := range records {
		if rec.OwnerID == ownerID {
			out = append(out, toDomain(rec))
		}
	}
	return out, nil
}

func (r *recipesRepo) Create(ctx context.Context, rec domain.Recipe) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := r.loadAll()
	if err != nil {
		return err
	}

	for _, existing := range records {
		if existing.ID == rec.ID {
			return store.ErrAlreadyExists
		}
	}

	records = append(records, fromDomain(rec))
	return r.s.save(recipesFile, records)
}

func (r *recipesRepo) UpdateOwned(
	ctx context.Context,
	id, ownerID string,
	fields domain.RecipeFields,
) (domain.Recipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := r.loadAll()
	if err != nil {
		return domain.Recipe{}, err
	}

	for i, rec := range records {
		if rec.ID != id || rec.OwnerID != ownerID {
			continue
		}

		rec.Title = fields.Title
		rec.Ingredients = fields.Ingredients
		rec.Instructions = fields.Instructions
		rec.Category = fields.Category
		rec.Date = fields.Date
		rec.UpdatedAt = time.Now().UTC()
		records[i] = rec

		if err := r.s.save(recipesFile, records); err != nil {
			return domain.Recipe{}, err
		}
		return toDomain(rec), nil
	}
	return domain.Recipe{}, store.ErrNotFound
}

func (r *recipesRepo) DeleteOwned(ctx context.Context, id, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := r.loadAll()
	if err != nil {
		return err
	}

	for i, rec := range records {
		if rec.ID == id && rec.OwnerID == ownerID {
			records = append(records[:i], records[i+1:]...)
			return r.s.save(recipesFile, records)
		}
	}
	return store.ErrNotFound
}

func (r *recipesRepo) loadAll() ([]recipeRecord, error) {
	var records []recipeRecord
	if err := r.s.load(recipesFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func toDomain(rec recipeRecord) domain.Recipe {
	return domain.Recipe{
		ID:           rec.ID,
		Title:        rec.Title,
		Ingredients:  rec.Ingredients,
		Instructions: rec.Instructions,
		Category:     rec.Category,
		Date:         rec.Date,
		OwnerID:      rec.OwnerID,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func fromDomain(rec domain.Recipe) recipeRecord {
	return recipeRecord{
		ID:           rec.ID,
		Title:        rec.Title,
		Ingredients:  rec.Ingredients,
		Instructions: rec.Instructions,
		Category:     rec.Category,
		Date:         rec.Date,
		OwnerID:      rec.OwnerID,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
