package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const SymmetricKeySize = 32

// GenerateBase64Key generates a random PASETO v2 local key, base64 URL-encoded.
func GenerateBase64Key() (string, error) {
	key := make([]byte, SymmetricKeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}
	return base64.URLEncoding.EncodeToString(key), nil
}

// DecodeBase64Key accepts URL or standard base64, padded or not, and
// requires exactly 32 bytes once decoded.
func DecodeBase64Key(encoded string) ([]byte, error) {
	decoders := []*base64.Encoding{
		base64.URLEncoding,
		base64.RawURLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	}

	var lastErr error
	for _, enc := range decoders {
		key, err := enc.DecodeString(encoded)
		if err != nil {
			lastErr = err
			continue
		}
		if len(key) != SymmetricKeySize {
			return nil, fmt.Errorf("key must be exactly %d bytes after decoding, got %d", SymmetricKeySize, len(key))
		}
		return key, nil
	}
	return nil, fmt.Errorf("key is not valid base64: %w", lastErr)
}
