package jsonfile

import (
	"context"
	"time"

	"github.com/aussiebroadwan/recipebook/internal/recipes/domain"
	"github.com/aussiebroadwan/recipebook/internal/recipes/store"
)

type userRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

type usersRepo struct {
	s *Store
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	return r.find(func(u userRecord) bool { return u.ID == id })
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.find(func(u userRecord) bool { return u.Username == username })
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.find(func(u userRecord) bool { return u.Email == email })
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var records []userRecord
	if err := r.s.load(usersFile, &records); err != nil {
		return err
	}

	for _, existing := range records {
		if existing.Username == u.Username || existing.Email == u.Email {
			return store.ErrAlreadyExists
		}
	}

	records = append(records, userRecord{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	})

	return r.s.save(usersFile, records)
}

func (r *usersRepo) find(match func(userRecord) bool) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var records []userRecord
	if err := r.s.load(usersFile, &records); err != nil {
		return domain.User{}, err
	}

	for _, rec := range records {
		if match(rec) {
			return domain.User{
				ID:           rec.ID,
				Username:     rec.Username,
				Email:        rec.Email,
				PasswordHash: rec.PasswordHash,
				CreatedAt:    rec.CreatedAt,
			}, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}
