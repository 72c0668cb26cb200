package domain

import "time"

// User is a registered account. Users are created at registration and never
// mutated or deleted afterwards.
type User struct {
	ID           string
	Username     string // unique
	Email        string // unique
	PasswordHash string // argon2id encoded, never exposed through the API
	CreatedAt    time.Time
}
