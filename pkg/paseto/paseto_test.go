package paseto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-attendance/models"
	util "employee-attendance/pkg/utils"
)

const testSecret = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="

var testUser = &models.User{
	ID:         "6f1c2a9e-2d1b-4c59-9d5e-0b8f3e7a1c11",
	EmployeeID: "EMP-7",
	Name:       "Ana",
	Email:      "ana@example.com",
	Role:       models.RoleEmployee,
}

func TestTokenRoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := maker.GenerateToken(testUser)
	require.NoError(t, err)
	assert.Contains(t, token, "v2.local.")

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, &models.Claims{
		UserID:     testUser.ID,
		Email:      testUser.Email,
		Role:       models.RoleEmployee,
		EmployeeID: "EMP-7",
		Name:       "Ana",
	}, claims)
}

func TestTokenExpires(t *testing.T) {
	maker, err := NewPasetoMaker(testSecret, time.Hour)
	require.NoError(t, err)

	issued := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	maker.now = func() time.Time { return issued }
	token, err := maker.GenerateToken(testUser)
	require.NoError(t, err)

	maker.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = maker.ValidateToken(token)
	assert.NoError(t, err)

	maker.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = maker.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsForeignKeyAndGarbage(t *testing.T) {
	maker, err := NewPasetoMaker(testSecret, time.Hour)
	require.NoError(t, err)
	token, err := maker.GenerateToken(testUser)
	require.NoError(t, err)

	otherKey, err := util.GenerateBase64Key()
	require.NoError(t, err)
	other, err := NewPasetoMaker(otherKey, time.Hour)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = maker.ValidateToken("v2.local.not-a-token")
	assert.Error(t, err)

	_, err = maker.GenerateToken(nil)
	assert.Error(t, err)
}

func TestNewPasetoMakerRejectsShortKey(t *testing.T) {
	_, err := NewPasetoMaker("c2hvcnQ=", time.Hour)
	assert.Error(t, err)
}
