package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndDecodeKey(t *testing.T) {
	encoded, err := GenerateBase64Key()
	require.NoError(t, err)

	key, err := DecodeBase64Key(encoded)
	require.NoError(t, err)
	assert.Len(t, key, SymmetricKeySize)
}

func TestDecodeBase64KeyRejectsWrongLength(t *testing.T) {
	_, err := DecodeBase64Key(base64.URLEncoding.EncodeToString([]byte("too short")))
	assert.Error(t, err)

	_, err = DecodeBase64Key("%%% not base64 %%%")
	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Code string `validate:"required,employeecode"`
		Role string `validate:"omitempty,oneof=employee admin"`
	}

	assert.NoError(t, ValidateStruct(payload{Code: "EMP-001"}))

	err := ValidateStruct(payload{Code: "EMP 001", Role: "boss"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ana@example.com"))
	assert.False(t, IsEmail("ana.example.com"))
	assert.False(t, IsEmail(""))
}
