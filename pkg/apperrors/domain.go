package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (оборачивают ошибки нижних слоев, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (для частых, статичных ошибок)
// =========================================================================

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль.
// Сообщение единое: не раскрываем, существует ли email.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - email уже используется.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidToken - неверный или просроченный токен (access или refresh).
// Единая ошибка для всех причин отказа: подпись, срок, формат.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrWeakPassword - пароль слишком слабый.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions - не хватает прав на действие.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- OAuth ---

// ErrOAuthExchange - провайдер идентификации недоступен или отверг код.
// Автоматических повторов внутри запроса нет.
var ErrOAuthExchange = New(
	CodeExternalServiceError,
	"oauth",
	"Authorization with the identity provider failed",
	http.StatusInternalServerError,
)

// ErrOAuthStateMismatch - state из callback не совпал с выданным.
var ErrOAuthStateMismatch = New(
	CodeInvalidToken,
	"oauth",
	"Invalid authorization state",
	http.StatusUnauthorized,
)

// --- Jobs & Applications ---

// ErrJobNotFound - вакансия не найдена.
var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrJobNotOpen - отклики принимаются только на открытые вакансии.
var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"Job is not accepting applications",
	http.StatusBadRequest,
)

// ErrAlreadyApplied - повторный отклик на ту же вакансию.
var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied to this job",
	http.StatusConflict,
)

// --- Profile / Company ---

// ErrProfileNotFound - профиль пользователя не найден.
var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

// ErrCompanyRequired - для аккаунта компании обязательна компания.
var ErrCompanyRequired = New(
	CodeValidationFailed,
	"validation",
	"Company name is required for company accounts",
	http.StatusBadRequest,
)
