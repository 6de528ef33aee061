// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация и вход.
package api

import "github.com/IvanChernomyrdin/go-todo-backend/internal/shared/models"

// RegisterRequest описывает тело запроса регистрации пользователя.
//
// Name, Email и Password передаются в JSON формате в эндпоинт /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse описывает ответ сервера при успешной регистрации.
//
// Сервер оборачивает данные в конверт items; Data содержит созданного
// пользователя (без пароля).
type RegisterResponse struct {
	Error bool `json:"error"`
	Items struct {
		Data    models.UserView `json:"data"`
		Message string          `json:"message"`
	} `json:"items"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает ответ сервера при успешном входе.
//
// Data содержит access токен для авторизации последующих запросов.
type LoginResponse struct {
	Error bool `json:"error"`
	Items struct {
		Data    string `json:"data"`
		Message string `json:"message"`
	} `json:"items"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /auth/register и возвращает RegisterResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(name, email, password string) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.PostJSON("/auth/register", RegisterRequest{Name: name, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает access токен.
//
// Метод отправляет POST запрос на /auth/login. Токен лежит в Items.Data.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.PostJSON("/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}
