package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"employee-attendance/models"
	"employee-attendance/pkg/password"
	util "employee-attendance/pkg/utils"
	"employee-attendance/repository"
)

const MinPasswordLength = 6

// AuthService owns accounts: email/password credentials and the profile
// attached to them.
type AuthService struct {
	credentials repository.CredentialRepository
	users       repository.UserRepository
	now         func() time.Time
}

func NewAuthService(credentials repository.CredentialRepository, users repository.UserRepository) *AuthService {
	return &AuthService{credentials: credentials, users: users, now: time.Now}
}

// CreateAccount registers a credential and returns its new uid. Failures are
// categorized as ErrInvalidEmail, ErrWeakPassword, ErrEmailInUse or a StoreError.
func (s *AuthService) CreateAccount(ctx context.Context, email, pw string) (string, error) {
	if !util.IsEmail(email) {
		return "", models.ErrInvalidEmail
	}
	if len(pw) < MinPasswordLength {
		return "", models.ErrWeakPassword
	}

	hash, err := password.HashPassword(pw)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	cred := &models.Credential{
		ID:           uuid.NewString(),
		Email:        repository.NormalizeEmail(email),
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.credentials.CreateCredential(ctx, cred); err != nil {
		return "", err
	}
	return cred.ID, nil
}

// Authenticate checks email/password and returns the account uid with its profile.
func (s *AuthService) Authenticate(ctx context.Context, email, pw string) (string, *models.User, error) {
	cred, err := s.credentials.FindCredentialByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if cred == nil {
		return "", nil, models.ErrAccountNotFound
	}
	if !password.CheckPasswordHash(pw, cred.PasswordHash) {
		return "", nil, models.ErrInvalidCredentials
	}

	user, err := s.users.FindUserByID(ctx, cred.ID)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		// Credential without a profile: a provisioning that never completed.
		return "", nil, models.ErrAccountNotFound
	}
	return cred.ID, user, nil
}

func (s *AuthService) DeleteAccount(ctx context.Context, uid string) error {
	return s.credentials.DeleteCredential(ctx, uid)
}
