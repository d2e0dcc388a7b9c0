package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"employee-attendance/models"
	"employee-attendance/repository"
)

const AdminEmployeeID = "ADMIN-001"

type Provisioner interface {
	ProvisionEmployee(ctx context.Context, payload models.EmployeeCreatePayload) (*models.User, error)
}

// AdminAccount describes the bootstrap administrator.
type AdminAccount struct {
	Email    string
	Password string
	Name     string
}

// SeedAdmin provisions the first administrator so that employees can be
// created through the API. It does nothing when the email already has a
// profile or when no account is configured.
func SeedAdmin(ctx context.Context, provisioner Provisioner, users repository.UserRepository, admin AdminAccount) error {
	if admin.Email == "" || admin.Password == "" {
		log.Println("Admin seeding skipped: no admin account configured")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	existing, err := users.FindUserByEmail(ctx, repository.NormalizeEmail(admin.Email))
	if err != nil {
		return fmt.Errorf("look up admin: %w", err)
	}
	if existing != nil {
		log.Printf("Admin %s already exists, seeding skipped", existing.Email)
		return nil
	}

	name := admin.Name
	if name == "" {
		name = "Administrator"
	}

	user, err := provisioner.ProvisionEmployee(ctx, models.EmployeeCreatePayload{
		EmployeeID: AdminEmployeeID,
		Name:       name,
		Email:      admin.Email,
		Password:   admin.Password,
		Position:   "Administrator",
		Role:       models.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("provision admin: %w", err)
	}

	log.Printf("Admin %s (%s) created", user.Email, user.EmployeeID)
	return nil
}
