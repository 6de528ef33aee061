// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Неверные учётные данные. Текст отдаётся клиенту как есть,
	// одинаковый для "нет такого email" и "неверный пароль".
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Входные данные невалидны (неправильный формат id и т.п.)
	ErrInvalidInput = errors.New("invalid input")
)

// только для todo
var (
	// Нарушение ограничения хранилища (enum статуса).
	// Текст специально начинается с "Todo validation failed" —
	// клиенты матчатся на подстроку.
	ErrTodoValidation = errors.New("Todo validation failed")
)

// ValidationError — отсутствует обязательное поле запроса.
// Сообщение отдаётся клиенту дословно: "Name is required" и т.п.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Required возвращает ValidationError для поля field.
// field пишется с большой буквы: "Name", "Email", "Status"...
func Required(field string) error {
	return &ValidationError{Field: field}
}

// IsValidation сообщает, является ли err ошибкой валидации полей.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
