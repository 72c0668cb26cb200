package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/recipebook/internal/recipes/domain"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
)

type recipesRepo struct {
	db *sql.DB
}

const recipeColumns = `id, title, ingredients, instructions, category, date, owner_id, created_at, updated_at`

func (r *recipesRepo) GetOwned(ctx context.Context, id, ownerID string) (domain.Recipe, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ? AND owner_id = ?`,
		id, ownerID)
	return scanRecipe(row)
}

func (r *recipesRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	// ULID primary keys sort in creation order, so this is insertion order.
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE owner_id = ? ORDER BY id`,
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Ingredients, &rec.Instructions,
			&rec.Category, &rec.Date, &rec.OwnerID, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *recipesRepo) Create(ctx context.Context, rec domain.Recipe) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recipes (id, title, ingredients, instructions, category, date, owner_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.Ingredients, rec.Instructions,
		rec.Category, rec.Date, rec.OwnerID, rec.CreatedAt, rec.UpdatedAt)
	return mapConstraint(err)
}

func (r *recipesRepo) UpdateOwned(
	ctx context.Context,
	id, ownerID string,
	fields domain.RecipeFields,
) (domain.Recipe, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE recipes
		 SET title = ?, ingredients = ?, instructions = ?, category = ?, date = ?, updated_at = ?
		 WHERE id = ? AND owner_id = ?`,
		fields.Title, fields.Ingredients, fields.Instructions,
		fields.Category, fields.Date, time.Now().UTC(),
		id, ownerID)
	if err != nil {
		return domain.Recipe{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return domain.Recipe{}, err
	} else if n == 0 {
		return domain.Recipe{}, store.ErrNotFound
	}

	return r.GetOwned(ctx, id, ownerID)
}

func (r *recipesRepo) DeleteOwned(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM recipes WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanRecipe(row *sql.Row) (domain.Recipe, error) {
	var rec domain.Recipe
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Ingredients, &rec.Instructions,
		&rec.Category, &rec.Date, &rec.OwnerID, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.Recipe{}, mapNotFound(err)
	}
	return rec, nil
}
