// Package service содержит бизнес-логику приложения (todo-backend).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/config"
	"github.com/IvanChernomyrdin/go-todo-backend/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Todos TodosRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Todos *TodosService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config) (*Services, error) {
	auth, err := NewAuthService(repos.Users, cfg)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:  auth,
		Todos: NewTodosService(repos.Todos),
	}, nil
}

// UsersRepo — репозиторий пользователей (нужен для auth/register/login).
type UsersRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
}

// TodosRepo — репозиторий задач (CRUD, выборка по владельцу).
type TodosRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title, status, description string) (models.Todo, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Todo, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (models.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
