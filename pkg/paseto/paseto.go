package paseto

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"

	"employee-attendance/models"
	util "employee-attendance/pkg/utils"
)

// Maker issues and validates v2.local tokens carrying the caller's identity.
type Maker struct {
	v2           *paseto.V2
	symmetricKey []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewPasetoMaker(secretBase64 string, ttl time.Duration) (*Maker, error) {
	key, err := util.DecodeBase64Key(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid PASETO_SECRET: %w", err)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Maker{v2: paseto.NewV2(), symmetricKey: key, ttl: ttl, now: time.Now}, nil
}

func (m *Maker) GenerateToken(user *models.User) (string, error) {
	if user == nil {
		return "", errors.New("user is required")
	}
	now := m.now()

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: now.Add(m.ttl),
		NotBefore:  now,
		Subject:    user.ID,
	}

	token.Set("email", user.Email)
	token.Set("role", user.Role)
	token.Set("employee_id", user.EmployeeID)
	token.Set("name", user.Name)

	return m.v2.Encrypt(m.symmetricKey, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.v2.Decrypt(tokenString, m.symmetricKey, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(paseto.ValidAt(m.now())); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if token.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &models.Claims{
		UserID:     token.Subject,
		Email:      token.Get("email"),
		Role:       token.Get("role"),
		EmployeeID: token.Get("employee_id"),
		Name:       token.Get("name"),
	}, nil
}
