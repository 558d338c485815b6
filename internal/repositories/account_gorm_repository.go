package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"resumehub/internal/models"

	"gorm.io/gorm"
)

// NormalizeEmail lowercases and trims an email address. Every repository
// operation applies it before touching the database, so the unique index on
// accounts.email enforces case-insensitive uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GORMAccountRepository is a GORM implementation of AccountRepository.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

// Create inserts a new account. The identifier is assigned by the database
// and the registration timestamp is set here, at the moment of persistence.
// A unique-constraint violation on the email column is reported as
// ErrEmailTaken; this relies on gorm.Config{TranslateError: true}.
func (r *GORMAccountRepository) Create(account *models.Account) error {
	account.Email = NormalizeEmail(account.Email)
	if account.RegisteredAt.IsZero() {
		account.RegisteredAt = time.Now().UTC()
	}
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// FindByEmail retrieves an account by its email, case-insensitively.
func (r *GORMAccountRepository) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "email = ?", NormalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &account, nil
}

// FindByID retrieves an account by its identifier.
func (r *GORMAccountRepository) FindByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID %d: %w", id, err)
	}
	return &account, nil
}

// UpdateResumePath stores the resume file reference for an existing account.
func (r *GORMAccountRepository) UpdateResumePath(id uint, path string) error {
	res := r.db.Model(&models.Account{}).Where("id = ?", id).Update("resume_path", path)
	if res.Error != nil {
		return fmt.Errorf("failed to update resume path: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM does not return ErrRecordNotFound for updates that match
		// no rows, so we check RowsAffected.
		return ErrAccountNotFound
	}
	return nil
}
