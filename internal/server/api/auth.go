// HTTP-хендлеры регистрации и логина
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-todo-backend/internal/shared/errors"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию пользователя.
//
// Порядок проверки полей: name, email, password. Клиент получает ровно
// одно сообщение "<Field> is required" — про первое отсутствующее поле.
//
// Ответы:
//   - 201 Created: {"error":false,"items":{"data":{id,name,email},"message":...}};
//   - 400 Bad Request: неверный JSON или отсутствует обязательное поле;
//   - 500 Internal Server Error: ошибки хранилища (включая занятый email).
//
// @Summary      Register user
// @Description  Creates a new user. Password is stored as a hash and never returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      201 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse "Missing field or bad JSON"
// @Failure      500 {object} models.ErrorResponse "Store error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, err := h.Svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case serr.IsValidation(err):
			WriteError(w, http.StatusBadRequest, err)
		default:
			// ошибки хранилища (в т.ч. занятый email) отдаём как серверные,
			// сообщение не нормализуем
			h.Log.Logger.Sugar().Errorw("register failed", "error", err)
			WriteError(w, http.StatusInternalServerError, err)
		}
		return
	}

	WriteItems(w, http.StatusCreated, user, "User registered successfully")
}

// Login обрабатывает вход пользователя и выдачу access-токена.
//
// Любой провал аутентификации (нет такого email, неверный пароль) отдаётся
// одинаково: 500 с сообщением "Invalid credentials". Это сознательно
// сохранённое поведение контракта, а не 401.
//
// Ответы:
//   - 200 OK: {"error":false,"items":{"data":"<token>","message":...}};
//   - 400 Bad Request: неверный JSON;
//   - 500 Internal Server Error: неверные учётные данные или ошибка хранилища.
//
// @Summary      Login user
// @Description  Verifies credentials and returns a signed access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} models.SuccessResponse
// @Failure      400 {object} models.ErrorResponse "Bad JSON"
// @Failure      500 {object} models.ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusInternalServerError, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Errorw("login failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteItems(w, http.StatusOK, token, "User logged in successfully")
}
