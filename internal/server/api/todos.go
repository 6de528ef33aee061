// HTTP-хендлеры CRUD задач
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/middleware"

	serr "github.com/IvanChernomyrdin/go-todo-backend/internal/shared/errors"
)

// CreateTodoRequest — тело запроса создания задачи.
//
// Владелец в теле не передаётся: сервер берёт его из JWT.
type CreateTodoRequest struct {
	Title       string `json:"title"`       // заголовок задачи
	Status      string `json:"status"`      // active | inactive (enum проверяет хранилище)
	Description string `json:"description"` // описание задачи
}

// UpdateTodoRequest — тело запроса смены статуса задачи.
type UpdateTodoRequest struct {
	Status string `json:"status"`
}

// CreateTodo создаёт новую задачу для аутентифицированного пользователя.
//
// Хендлер проверяет только наличие полей (title, status, description,
// первое отсутствующее выигрывает); значение статуса валидирует хранилище,
// и его отказ отдаётся как 500 с сообщением "Todo validation failed: ...".
//
// Требует JWT-аутентификацию.
//
// @Summary      Create todo
// @Description  Creates a new todo owned by the authenticated user.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTodoRequest true "Create todo request"
// @Success      201 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse "Missing field or bad JSON"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Todo validation failed"
// @Router       /todos [post]
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	_, err := h.Svc.Todos.Create(
		r.Context(),
		userID,
		req.Title,
		req.Status,
		req.Description,
	)

	if err != nil {
		switch {
		case serr.IsValidation(err):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrUnauthorized):
			WriteError(w, http.StatusUnauthorized, err)
		default:
			// сюда же попадает ErrTodoValidation — сообщение хранилища
			// уходит клиенту как есть
			h.Log.Logger.Sugar().Errorw(
				"create todo failed",
				"error", err,
				"user_id", userID,
			)
			WriteError(w, http.StatusInternalServerError, err)
		}
		return
	}

	WriteItems(w, http.StatusCreated, nil, "Todo created successfully")
}

// ListTodos возвращает все задачи текущего пользователя.
//
// Пользователь определяется по JWT-токену (middleware). Задачи других
// пользователей в выборку не попадают.
//
// @Summary      List todos
// @Description  Returns all todos belonging to the authenticated user.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.SuccessResponse
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /todos [get]
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}
	// вызываем сервис
	todos, err := h.Svc.Todos.List(r.Context(), userID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list todos failed", "error", err, "user_id", userID)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteItems(w, http.StatusOK, todos, "Todos fetched successfully")
}

// UpdateTodo меняет статус существующей задачи.
//
// Идентификатор задачи передаётся в URL-параметре `{id}`.
// Задача ищется только по id; принадлежность вызывающему пользователю
// повторно не проверяется.
//
// @Summary      Update todo status
// @Description  Updates the status of a todo by id.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Todo ID (UUID)"
// @Param        request body      UpdateTodoRequest true "New status"
// @Success      200 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse "Status missing or bad id"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      404 {object} models.ErrorResponse "Not found"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /todos/{id} [patch]
func (h *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "id")

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	todo, err := h.Svc.Todos.UpdateStatus(r.Context(), todoID, req.Status)
	if err != nil {
		switch {
		case serr.IsValidation(err):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"update todo failed",
				"error", err,
				"todo_id", todoID,
			)
			WriteError(w, http.StatusInternalServerError, err)
		}
		return
	}

	WriteItems(w, http.StatusOK, todo, "Todo updated successfully")
}

// DeleteTodo удаляет задачу по id.
//
// Удаление несуществующего id неотличимо от успеха — клиент в любом
// случае получает 200.
//
// @Summary      Delete todo
// @Description  Deletes a todo by id.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Todo ID (UUID)"
// @Success      200 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse "Bad id"
// @Failure      401 {object} models.ErrorResponse "Unauthorized"
// @Failure      500 {object} models.ErrorResponse "Internal server error"
// @Router       /todos/{id} [delete]
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID := chi.URLParam(r, "id")

	if err := h.Svc.Todos.Delete(r.Context(), todoID); err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete todo failed",
				"error", err,
				"todo_id", todoID,
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteItems(w, http.StatusOK, nil, "Todo deleted successfully")
}
