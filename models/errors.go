package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNoOpenSession      = errors.New("no active check-in found, please check in first")
	ErrSessionAlreadyOpen = errors.New("already checked in, please check out first")
	ErrStore              = errors.New("store failure")

	ErrEmailInUse         = errors.New("email already in use")
	ErrEmployeeIDInUse    = errors.New("employee ID already in use")
	ErrWeakPassword       = errors.New("password should be at least 6 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrAccountNotFound    = errors.New("no account found with this email")
)

// StoreError wraps an I/O failure from the backing store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// ValidationError carries per-field messages collected before any I/O.
type ValidationError struct {
	Fields []*FieldError
}

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s", ErrValidation, e.Fields[0].Msg)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
