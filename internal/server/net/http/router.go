// Package http реализует маршрутизацию HTTP-слоя сервера todo-backend.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - CORS для браузерных клиентов;
//   - проверку JWT access-токенов на защищённых путях.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/api"
	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации под префиксом /auth;
//   - middleware логирования и CORS для всех запросов;
//   - группу защищённых JWT эндпоинтов /todos.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	// CORS для браузерных клиентов
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
	// защищены пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())
		// CRUD запросы для задач
		r.Route("/todos", func(r chi.Router) {
			r.Post("/", h.CreateTodo)       // Создание задачи
			r.Get("/", h.ListTodos)         // Получение всех задач пользователя
			r.Patch("/{id}", h.UpdateTodo)  // Смена статуса по id
			r.Delete("/{id}", h.DeleteTodo) // Удаление по id
		})
	})

	return r
}
