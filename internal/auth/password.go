package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// passwordCost - фиксированный рабочий фактор bcrypt для паролей
const passwordCost = 12

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword проверяет сложность пароля
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}

// sha256Hex сворачивает строку токена до 64 символов:
// bcrypt принимает не больше 72 байт, а JWT значительно длиннее
func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashRefreshToken создает односторонний хеш refresh-токена для хранения
// в леджере сессий. Сам токен никогда не пишется в БД.
func HashRefreshToken(token string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(sha256Hex(token)), bcrypt.DefaultCost)
	return string(bytes), err
}

// RefreshTokenMatches сравнивает предъявленный токен с хранимым хешем
func RefreshTokenMatches(hash, token string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(sha256Hex(token))) == nil
}
