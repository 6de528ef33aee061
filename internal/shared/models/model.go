package models

import (
	"time"

	"github.com/google/uuid"
)

// Todo — плоская модель задачи, используемая в HTTP API.
//
// Поля:
//   - ID: уникальный идентификатор задачи
//   - Title: заголовок задачи
//   - Description: описание (может быть пустым)
//   - Status: active | inactive (enum контролирует хранилище)
//   - UserID: владелец задачи, проставляется сервером при создании
//   - UpdatedAt/CreatedAt: серверные отметки времени
type Todo struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      uuid.UUID `json:"user_id"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// Статусы задачи. Других значений хранилище не принимает.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// UserView — пользователь в ответах API.
// Пароль (и его хэш) наружу не отдаётся никогда.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Items — полезная нагрузка успешного ответа.
//
// Контракт API оборачивает данные в items:
//
//	{"error":false,"items":{"data":...,"message":"..."}}
type Items struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse — успешный ответ API.
type SuccessResponse struct {
	Error bool  `json:"error"`
	Items Items `json:"items"`
}

// ErrorResponse — стандартный формат ошибки API.
//
//	{"error":true,"message":"..."}
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
