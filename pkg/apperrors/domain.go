package apperrors

import (
	"fmt"
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок
(пользователи, врачи, записи на прием, аутентификация).
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrDuplicateField - конфликт уникального поля при регистрации.
// Сообщение называет поле, которое уже занято (username/email/mobile).
func ErrDuplicateField(field string) *AppError {
	return New(CodeConflict, "user", fmt.Sprintf("%s already exists", field), http.StatusBadRequest).
		WithDetails(map[string]string{"field": field})
}

// ErrMalformedID - невалидный идентификатор в пути запроса.
// Исторически такие запросы получают 404, а не 400.
func ErrMalformedID(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusNotFound)
}

// ErrInvalidStatusTransition - недопустимый переход статуса записи на прием
func ErrInvalidStatusTransition(from, to string) *AppError {
	return New(
		CodeInvalidStatus,
		"appointment",
		fmt.Sprintf("illegal status transition: %s -> %s", from, to),
		http.StatusBadRequest,
	)
}

// --- Аутентификация ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusBadRequest, // исторический контракт логина: 400, а не 401
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token. Please login again.",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token expired. Please login again.",
	http.StatusUnauthorized,
)

var ErrNoToken = New(
	CodeUnauthorized,
	"auth",
	"No token provided. Authorization denied.",
	http.StatusUnauthorized,
)
