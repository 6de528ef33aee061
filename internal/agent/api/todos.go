// Методы клиента для CRUD задач: создание, список, смена статуса, удаление.
package api

import "github.com/IvanChernomyrdin/go-todo-backend/internal/shared/models"

// CreateTodoRequest описывает тело запроса создания задачи.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// UpdateTodoRequest описывает тело запроса смены статуса задачи.
type UpdateTodoRequest struct {
	Status string `json:"status"`
}

// MessageResponse описывает ответ сервера без данных — только сообщение.
type MessageResponse struct {
	Error bool `json:"error"`
	Items struct {
		Message string `json:"message"`
	} `json:"items"`
}

// ListTodosResponse описывает ответ сервера со списком задач пользователя.
type ListTodosResponse struct {
	Error bool `json:"error"`
	Items struct {
		Data    []models.Todo `json:"data"`
		Message string        `json:"message"`
	} `json:"items"`
}

// TodoResponse описывает ответ сервера с одной задачей (после обновления).
type TodoResponse struct {
	Error bool `json:"error"`
	Items struct {
		Data    models.Todo `json:"data"`
		Message string      `json:"message"`
	} `json:"items"`
}

// CreateTodo создаёт новую задачу текущего пользователя.
func (c *Client) CreateTodo(title, status, description, token string) (MessageResponse, error) {
	var resp MessageResponse
	err := c.PostJSON("/todos", CreateTodoRequest{
		Title:       title,
		Status:      status,
		Description: description,
	}, &resp, token)
	return resp, err
}

// ListTodos возвращает все задачи текущего пользователя.
func (c *Client) ListTodos(token string) (ListTodosResponse, error) {
	var resp ListTodosResponse
	err := c.GetJSON("/todos", &resp, token)
	return resp, err
}

// UpdateTodo меняет статус задачи по id.
func (c *Client) UpdateTodo(id, status, token string) (TodoResponse, error) {
	var resp TodoResponse
	err := c.PatchJSON("/todos/"+id, UpdateTodoRequest{Status: status}, &resp, token)
	return resp, err
}

// DeleteTodo удаляет задачу по id.
func (c *Client) DeleteTodo(id, token string) (MessageResponse, error) {
	var resp MessageResponse
	err := c.DeleteJSON("/todos/"+id, &resp, token)
	return resp, err
}
