package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"resumehub/internal/models"
	"resumehub/internal/repositories"
	"resumehub/internal/validation"
	"resumehub/pkg/passhash"
)

// ValidationError carries a user-facing message for malformed registration
// input. Handlers surface it verbatim with a 400 status.
type ValidationError string

// Error implements the error interface.
func (e ValidationError) Error() string { return string(e) }

// ErrInvalidCredentials is the single failure returned for both an unknown
// email and a wrong password, so login never reveals whether an account
// exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles business logic for registration and login.
type AuthService struct {
	accountRepo repositories.AccountRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo repositories.AccountRepository) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
	}
}

// Register validates the input, hashes the password and persists a new
// account. The checks run in a fixed order and the first failure wins:
// empty name, invalid email, password/confirm mismatch, password strength,
// duplicate email. Nothing is persisted unless every check passes.
func (s *AuthService) Register(fullName, email, password, confirm string) (*models.Account, error) {
	fullName = strings.TrimSpace(fullName)
	email = repositories.NormalizeEmail(email)

	if fullName == "" {
		return nil, ValidationError("full name is required")
	}
	if !validation.ValidEmail(email) {
		return nil, ValidationError("please enter a valid email address")
	}
	if password != confirm {
		return nil, ValidationError("password and confirm password do not match")
	}
	if ok, reason := validation.CheckPassword(password); !ok {
		return nil, ValidationError(reason)
	}

	// Pre-check for a fast user-facing message. The unique constraint in the
	// store still backs this up when two registrations race.
	if _, err := s.accountRepo.FindByEmail(email); err == nil {
		return nil, repositories.ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	hash, err := passhash.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.accountRepo.Create(account); err != nil {
		// ErrEmailTaken from the constraint is passed through unchanged.
		return nil, err
	}
	return account, nil
}

// Login looks up the account by normalized email and verifies the password
// against the stored digest. Every failure path returns
// ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*models.Account, error) {
	account, err := s.accountRepo.FindByEmail(repositories.NormalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := passhash.Verify(password, account.PasswordHash)
	if err != nil {
		// A malformed stored digest is a verification failure, not a crash.
		log.Printf("Password verification error for account %d: %v", account.ID, err)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
