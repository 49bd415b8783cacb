package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mamacare-api/internal/domain"
	"mamacare-api/internal/repository"
)

// AccountService coordinates registration and login rules.
type AccountService struct {
	logger   *zap.Logger
	accounts repository.AccountRepository
}

var (
	ErrEmailNotFound = errors.New("email not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrInvalidInput  = errors.New("invalid input")
)

func NewAccountService(logger *zap.Logger, accounts repository.AccountRepository) *AccountService {
	return &AccountService{
		logger:   logger,
		accounts: accounts,
	}
}

// Register hashes the password and inserts a new account. Uniqueness of
// username and email is enforced by the store in the same statement; conflicts
// come back as repository.ErrEmailTaken or repository.ErrUsernameTaken.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (domain.Account, error) {
	if s.accounts == nil {
		return domain.Account{}, errors.New("account service not configured")
	}

	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if username == "" || email == "" || password == "" {
		return domain.Account{}, ErrInvalidInput
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Account{}, err
	}

	account := domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashBytes),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// Authenticate looks up the account by email and verifies the password.
// A missing account and a bad password stay distinct so the login endpoint
// can report them separately.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.Account, error) {
	if s.accounts == nil {
		return domain.Account{}, errors.New("account service not configured")
	}

	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return domain.Account{}, ErrInvalidInput
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, ErrEmailNotFound
		}
		return domain.Account{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return domain.Account{}, ErrWrongPassword
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
