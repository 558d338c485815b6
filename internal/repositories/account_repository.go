package repositories

import (
	"errors"

	"resumehub/internal/models"
)

// Sentinel errors surfaced by the account store. Services match on these with
// errors.Is and translate them into user-facing outcomes.
var (
	// ErrEmailTaken is returned when an account with the same normalized
	// email already exists. It covers both the pre-check and the unique
	// constraint firing under a concurrent registration race.
	ErrEmailTaken = errors.New("email already registered")

	// ErrAccountNotFound is returned by lookups and updates that target a
	// non-existent account.
	ErrAccountNotFound = errors.New("account not found")
)

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	Create(account *models.Account) error
	FindByEmail(email string) (*models.Account, error)
	FindByID(id uint) (*models.Account, error)
	UpdateResumePath(id uint, path string) error
}
