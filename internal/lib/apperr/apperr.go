// Package apperr определяет доменные ошибки приложения и их сопоставление
// с HTTP статус-кодами. Сервисы возвращают наиболее конкретную ошибку,
// а HTTP-слой переводит её в статус и JSON-ответ через HTTPStatus.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation — входные данные не прошли проверку.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound — запрошенный ресурс не существует.
	ErrNotFound = errors.New("not found")
	// ErrForbidden — ресурс принадлежит другому пользователю.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials — неверная пара логин/пароль или невалидный токен.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAlreadyExists — нарушение уникальности (username или email заняты).
	ErrAlreadyExists = errors.New("already exists")
	// ErrStoreUnavailable — хранилище недоступно.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// HTTPStatus возвращает HTTP статус-код для доменной ошибки.
// Неизвестные ошибки считаются внутренними (500).
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
