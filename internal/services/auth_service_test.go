package services_test

import (
	"fmt"
	"log"
	"os"
	"strings"
	"testing"

	"resumehub/internal/models"
	"resumehub/internal/repositories"
	"resumehub/internal/services"
	"resumehub/pkg/passhash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountRepository is a mock implementation of
// repositories.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByEmail(email string) (*models.Account, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(id uint) (*models.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateResumePath(id uint, path string) error {
	args := m.Called(id, path)
	return args.Error(0)
}

// TestMain is used to setup the test environment.
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	authService := services.NewAuthService(mockRepo)

	mockRepo.On("FindByEmail", "jane@example.com").Return(nil, repositories.ErrAccountNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Account")).Return(nil).Once()

	account, err := authService.Register("Jane Doe", "JANE@Example.com", "Abcdef1!", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", account.FullName)
	assert.Equal(t, "jane@example.com", account.Email)
	assert.NotEqual(t, "Abcdef1!", account.PasswordHash)

	// The stored digest verifies against the original password.
	ok, err := passhash.Verify("Abcdef1!", account.PasswordHash)
	assert.NoError(t, err)
	assert.True(t, ok)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterValidationOrder(t *testing.T) {
	// Validation failures short-circuit before any repository call, so the
	// mock carries no expectations.
	mockRepo := new(MockAccountRepository)
	authService := services.NewAuthService(mockRepo)

	cases := []struct {
		name     string
		fullName string
		email    string
		password string
		confirm  string
		message  string
	}{
		{"empty name", "   ", "jane@example.com", "Abcdef1!", "Abcdef1!", "full name is required"},
		{"invalid email", "Jane Doe", "not-an-email", "Abcdef1!", "Abcdef1!", "please enter a valid email address"},
		{"empty name wins over bad email", "", "not-an-email", "Abcdef1!", "Abcdef1!", "full name is required"},
		{"mismatch before strength", "Jane Doe", "jane@example.com", "weak", "other", "password and confirm password do not match"},
		{"too short", "Jane Doe", "jane@example.com", "Ab1!", "Ab1!", "password must be at least 8 characters long"},
		{"multibyte too short", "Jane Doe", "jane@example.com", "Äbcde1!", "Äbcde1!", "password must be at least 8 characters long"},
		{"too long", "Jane Doe", "jane@example.com", strings.Repeat("Aa1!", 19), strings.Repeat("Aa1!", 19), "password must be at most 72 characters long"},
		{"no uppercase", "Jane Doe", "jane@example.com", "abcdef1!", "abcdef1!", "password must contain at least one uppercase letter"},
		{"no lowercase", "Jane Doe", "jane@example.com", "ABCDEF1!", "ABCDEF1!", "password must contain at least one lowercase letter"},
		{"no digit", "Jane Doe", "jane@example.com", "Abcdefg!", "Abcdefg!", "password must contain at least one digit"},
		{"no symbol", "Jane Doe", "jane@example.com", "Abcdefg1", "Abcdefg1", "password must contain at least one special character"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			account, err := authService.Register(tc.fullName, tc.email, tc.password, tc.confirm)
			assert.Nil(t, account)
			require.Error(t, err)

			var verr services.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.message, verr.Error())
		})
	}
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	authService := services.NewAuthService(mockRepo)

	existing := &models.Account{ID: 1, FullName: "Jane Doe", Email: "jane@example.com"}

	// Duplicate caught by the pre-check.
	mockRepo.On("FindByEmail", "jane@example.com").Return(existing, nil).Once()
	_, err := authService.Register("Imposter", "JANE@example.com", "Abcdef1!", "Abcdef1!")
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)
	mockRepo.AssertExpectations(t)

	// Duplicate caught by the unique constraint when the pre-check raced.
	mockRepo.On("FindByEmail", "jane@example.com").Return(nil, repositories.ErrAccountNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Account")).Return(repositories.ErrEmailTaken).Once()
	_, err = authService.Register("Imposter", "jane@example.com", "Abcdef1!", "Abcdef1!")
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterRepositoryFailure(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	authService := services.NewAuthService(mockRepo)

	mockRepo.On("FindByEmail", "jane@example.com").Return(nil, fmt.Errorf("database unavailable")).Once()
	_, err := authService.Register("Jane Doe", "jane@example.com", "Abcdef1!", "Abcdef1!")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	authService := services.NewAuthService(mockRepo)

	hash, err := passhash.Hash("Abcdef1!")
	require.NoError(t, err)
	account := &models.Account{
		ID:           7,
		FullName:     "Jane Doe",
		Email:        "jane@example.com",
		PasswordHash: hash,
	}

	// Successful login, with a differently-cased email; the service
	// normalizes before the lookup.
	mockRepo.On("FindByEmail", "jane@example.com").Return(account, nil).Once()
	got, err := authService.Login("JANE@Example.com", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "Jane Doe", got.FullName)
	mockRepo.AssertExpectations(t)

	// Wrong password.
	mockRepo.On("FindByEmail", "jane@example.com").Return(account, nil).Once()
	_, wrongPassErr := authService.Login("jane@example.com", "wrong")
	assert.ErrorIs(t, wrongPassErr, services.ErrInvalidCredentials)

	// Unknown email.
	mockRepo.On("FindByEmail", "nobody@example.com").Return(nil, repositories.ErrAccountNotFound).Once()
	_, unknownErr := authService.Login("nobody@example.com", "Abcdef1!")
	assert.ErrorIs(t, unknownErr, services.ErrInvalidCredentials)

	// Both failures carry the identical generic message.
	assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginMalformedHash(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	authService := services.NewAuthService(mockRepo)

	account := &models.Account{
		ID:           3,
		Email:        "jane@example.com",
		PasswordHash: "not-a-bcrypt-digest",
	}
	mockRepo.On("FindByEmail", "jane@example.com").Return(account, nil).Once()

	_, err := authService.Login("jane@example.com", "Abcdef1!")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}
