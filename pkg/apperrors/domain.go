package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок бизнес-логики.
Репозиторные ошибки (gorm) оборачиваются в AppError на уровне сервисов.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error, domain string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, "Resource already exists", http.StatusConflict)
}

// ErrUpstreamFailure - фабрика для ошибок внешнего сервиса проверки ИИН (502)
func ErrUpstreamFailure(err error) *AppError {
	return Wrap(err, CodeUpstreamFailure, "iin_provider", "Identity provider request failed", http.StatusBadGateway)
}

// ErrInvalidStatus - невалидное значение статуса верификации (400)
func ErrInvalidStatus(message string) *AppError {
	return New(CodeInvalidStatus, "verification", message, http.StatusBadRequest)
}

// ErrInvalidAdminCredentials - неверный админский пароль
var ErrInvalidAdminCredentials = New(
	CodeInvalidCredentials,
	"admin",
	"Invalid admin credentials",
	http.StatusUnauthorized,
)
