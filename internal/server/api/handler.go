// Package api реализует HTTP-слой сервера todo-backend.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - единый формат ответа: {"error":false,"items":{...}} при успехе
//     и {"error":true,"message":"..."} при ошибке.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/service"
	"github.com/IvanChernomyrdin/go-todo-backend/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-todo-backend/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// WriteError пишет ошибку в стандартном конверте {"error":true,"message":"..."}.
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   true,
		Message: err.Error(),
	})
}

// WriteItems пишет успешный ответ в конверте {"error":false,"items":{...}}.
func WriteItems(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.SuccessResponse{
		Error: false,
		Items: models.Items{
			Data:    data,
			Message: message,
		},
	})
}
