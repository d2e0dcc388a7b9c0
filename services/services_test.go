package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-attendance/models"
	"employee-attendance/repository"
)

func newServices() (*AuthService, *ProvisioningService, *repository.MemoryCredentialRepository, *repository.MemoryUserRepository) {
	creds := repository.NewMemoryCredentialRepository()
	users := repository.NewMemoryUserRepository()
	auth := NewAuthService(creds, users)
	return auth, NewProvisioningService(auth, users), creds, users
}

func validPayload() models.EmployeeCreatePayload {
	return models.EmployeeCreatePayload{
		EmployeeID: "EMP-001",
		Name:       "Ana Putri",
		Email:      "ana@example.com",
		Password:   "secret1",
		Position:   "Engineer",
	}
}

func TestCreateAccountCategorizesFailures(t *testing.T) {
	auth, _, _, _ := newServices()
	ctx := context.Background()

	_, err := auth.CreateAccount(ctx, "not-an-email", "secret1")
	assert.ErrorIs(t, err, models.ErrInvalidEmail)

	_, err = auth.CreateAccount(ctx, "ana@example.com", "12345")
	assert.ErrorIs(t, err, models.ErrWeakPassword)

	uid, err := auth.CreateAccount(ctx, "ana@example.com", "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, uid)

	_, err = auth.CreateAccount(ctx, "ANA@example.com", "123456")
	assert.ErrorIs(t, err, models.ErrEmailInUse)
}

func TestProvisionAndAuthenticate(t *testing.T) {
	auth, prov, _, users := newServices()
	ctx := context.Background()

	user, err := prov.ProvisionEmployee(ctx, validPayload())
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployee, user.Role)
	assert.Equal(t, "EMP-001", user.EmployeeID)

	stored, err := users.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	uid, profile, err := auth.Authenticate(ctx, "Ana@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)
	assert.Equal(t, "Ana Putri", profile.Name)

	_, _, err = auth.Authenticate(ctx, "ana@example.com", "wrong-password")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, _, err = auth.Authenticate(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, models.ErrAccountNotFound)
}

func TestProvisionValidatesBeforeIO(t *testing.T) {
	_, prov, creds, _ := newServices()

	payload := validPayload()
	payload.EmployeeID = ""
	payload.Name = "  "

	_, err := prov.ProvisionEmployee(context.Background(), payload)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.Zero(t, creds.Len())
}

func TestProvisionRollsBackCredentialWhenProfileFails(t *testing.T) {
	auth, prov, creds, users := newServices()
	users.FailCreate = errors.New("write concern timeout")

	_, err := prov.ProvisionEmployee(context.Background(), validPayload())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStore)
	assert.Zero(t, creds.Len(), "credential must be removed when the profile cannot be written")

	// The email is free again once the store recovers.
	users.FailCreate = nil
	_, err = prov.ProvisionEmployee(context.Background(), validPayload())
	require.NoError(t, err)

	_, _, err = auth.Authenticate(context.Background(), "ana@example.com", "secret1")
	assert.NoError(t, err)
}

type failingDeleteAccounts struct {
	AccountCreator
}

func (f failingDeleteAccounts) DeleteAccount(ctx context.Context, uid string) error {
	return errors.New("auth backend unreachable")
}

func TestProvisionReportsFailedRollback(t *testing.T) {
	auth, _, _, users := newServices()
	users.FailCreate = errors.New("disk full")
	prov := NewProvisioningService(failingDeleteAccounts{auth}, users)

	_, err := prov.ProvisionEmployee(context.Background(), validPayload())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStore)
	assert.ErrorContains(t, err, "rollback credential")
}

func TestProvisionSurfacesAuthErrors(t *testing.T) {
	_, prov, _, _ := newServices()

	payload := validPayload()
	payload.Password = "123"
	_, err := prov.ProvisionEmployee(context.Background(), payload)
	assert.ErrorIs(t, err, models.ErrWeakPassword)

	payload = validPayload()
	payload.Email = "ana(at)example.com"
	_, err = prov.ProvisionEmployee(context.Background(), payload)
	assert.ErrorIs(t, err, models.ErrInvalidEmail)

	_, err = prov.ProvisionEmployee(context.Background(), validPayload())
	require.NoError(t, err)
	_, err = prov.ProvisionEmployee(context.Background(), validPayload())
	assert.ErrorIs(t, err, models.ErrEmailInUse)
}

func TestProvisionRejectsDuplicateEmployeeID(t *testing.T) {
	auth, prov, creds, users := newServices()
	ctx := context.Background()

	_, err := prov.ProvisionEmployee(ctx, validPayload())
	require.NoError(t, err)

	second := validPayload()
	second.Name = "Budi Santoso"
	second.Email = "budi@example.com"
	_, err = prov.ProvisionEmployee(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrEmployeeIDInUse)
	assert.Equal(t, 1, creds.Len(), "the second credential must be rolled back")

	count, err := users.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, _, err = auth.Authenticate(ctx, "budi@example.com", "secret1")
	assert.ErrorIs(t, err, models.ErrAccountNotFound)
}
