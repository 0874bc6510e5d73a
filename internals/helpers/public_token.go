package helper

import (
	"crypto/rand"
	"encoding/hex"
)

// GeneratePublicToken membuat token opaque untuk akses invoice tanpa login.
// 24 byte random → 48 karakter hex; tidak bisa ditebak/di-enumerate.
func GeneratePublicToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
