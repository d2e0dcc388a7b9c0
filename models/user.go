package models

import (
	"time"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User is the employee profile. Its ID is the uid of the matching credential.
type User struct {
	ID         string    `json:"uid" bson:"_id"`
	EmployeeID string    `json:"employee_id" bson:"employee_id"`
	Name       string    `json:"name" bson:"name"`
	Role       string    `json:"role" bson:"role"`
	Email      string    `json:"email" bson:"email"`
	Position   string    `json:"position" bson:"position,omitempty"`
	Notes      string    `json:"notes" bson:"notes"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// Credential is the login side of an account, kept apart from the profile.
type Credential struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

type EmployeeCreatePayload struct {
	EmployeeID string `json:"employee_id" validate:"required,employeecode,max=32"`
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Position   string `json:"position" validate:"max=100"`
	Notes      string `json:"notes" validate:"max=500"`
	Role       string `json:"role" validate:"omitempty,oneof=employee admin"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Claims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
}
