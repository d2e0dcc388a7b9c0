package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"employee-attendance/models"
	util "employee-attendance/pkg/utils"
	"employee-attendance/repository"
)

// AccountCreator is the part of the auth collaborator provisioning needs.
type AccountCreator interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	DeleteAccount(ctx context.Context, uid string) error
}

// ProvisioningService creates an employee as a unit: credential first, then
// profile. A failed profile write deletes the credential again.
type ProvisioningService struct {
	accounts AccountCreator
	users    repository.UserRepository
	now      func() time.Time
}

func NewProvisioningService(accounts AccountCreator, users repository.UserRepository) *ProvisioningService {
	return &ProvisioningService{accounts: accounts, users: users, now: time.Now}
}

func (s *ProvisioningService) ProvisionEmployee(ctx context.Context, payload models.EmployeeCreatePayload) (*models.User, error) {
	payload.EmployeeID = strings.TrimSpace(payload.EmployeeID)
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Role == "" {
		payload.Role = models.RoleEmployee
	}

	if err := util.ValidateStruct(payload); err != nil {
		return nil, err
	}

	uid, err := s.accounts.CreateAccount(ctx, payload.Email, payload.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:         uid,
		EmployeeID: payload.EmployeeID,
		Name:       payload.Name,
		Role:       payload.Role,
		Email:      repository.NormalizeEmail(payload.Email),
		Position:   payload.Position,
		Notes:      payload.Notes,
		CreatedAt:  s.now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Compensate with a fresh context: the request one may be what failed.
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		if delErr := s.accounts.DeleteAccount(cctx, uid); delErr != nil {
			log.Printf("ERROR: credential %s left without profile, rollback failed: %v", uid, delErr)
			return nil, errors.Join(err, fmt.Errorf("rollback credential %s: %w", uid, delErr))
		}
		log.Printf("Profile creation failed for %s, credential %s rolled back", payload.Email, uid)
		return nil, err
	}

	log.Printf("Employee %s (%s) provisioned with role %s", user.EmployeeID, user.Email, user.Role)
	return user, nil
}
