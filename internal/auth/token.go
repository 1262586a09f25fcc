package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSessionToken генерирует сессионный токен: 16 случайных байт,
// hex-кодировка - 32 символа. Выдается один раз при регистрации.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
