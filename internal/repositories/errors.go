package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrSessionNotFound   = errors.New("session not found")
	ErrJobNotFound       = errors.New("job not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

// isDuplicateKeyError распознает нарушение unique constraint.
// Уникальный индекс в БД - единственный арбитр при гонках:
// предварительные проверки в сервисах только советуют.
// Строковые проверки покрывают драйверы без TranslateError (sqlite в тестах).
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
