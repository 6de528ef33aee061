package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/shared/models"

	serr "github.com/IvanChernomyrdin/go-todo-backend/internal/shared/errors"
)

// TodosService реализует бизнес-логику работы с задачами пользователя.
// Сервис:
//   - проверяет наличие обязательных полей (порядок title, status, description);
//   - enum статуса НЕ проверяет — это делает хранилище (CHECK-констрейнт),
//     и его отказ всплывает наверх как ErrTodoValidation;
//   - не знает о HTTP и БД напрямую.
type TodosService struct {
	repo TodosRepo
}

// NewTodosService создаёт новый TodosService.
func NewTodosService(repo TodosRepo) *TodosService {
	return &TodosService{repo: repo}
}

// Create создаёт новую задачу пользователя.
//
// Владелец задачи — userID из контекста аутентификации, клиент его
// передать не может.
//
// Валидации (первое отсутствующее поле выигрывает):
//   - title, status, description обязательны — именно в этом порядке.
//
// Ошибки:
//   - ValidationError — отсутствует обязательное поле;
//   - ErrTodoValidation — статус отклонён хранилищем;
//   - ErrUnauthorized — userID не является валидным UUID.
func (s *TodosService) Create(
	ctx context.Context,
	userID string,
	title string,
	status string,
	description string,
) (models.Todo, error) {

	uid, err := uuid.Parse(userID)
	if err != nil {
		return models.Todo{}, serr.ErrUnauthorized
	}

	if strings.TrimSpace(title) == "" {
		return models.Todo{}, serr.Required("Title")
	}
	if strings.TrimSpace(status) == "" {
		return models.Todo{}, serr.Required("Status")
	}
	if strings.TrimSpace(description) == "" {
		return models.Todo{}, serr.Required("Description")
	}

	return s.repo.Create(ctx, uid, title, status, description)
}

// List возвращает все задачи пользователя в порядке создания.
// Чужие задачи сюда попасть не могут: выборка всегда ограничена userID.
func (s *TodosService) List(ctx context.Context, userID string) ([]models.Todo, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, serr.ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, uid)
}

// UpdateStatus меняет статус задачи по id.
//
// Задача ищется только по id — принадлежность вызывающему пользователю
// повторно не проверяется.
//
// Ошибки:
//   - ValidationError — отсутствует статус;
//   - ErrInvalidInput — id не является валидным UUID;
//   - ErrNotFound — задачи с таким id нет;
//   - ErrTodoValidation — статус отклонён хранилищем.
func (s *TodosService) UpdateStatus(ctx context.Context, id, status string) (models.Todo, error) {
	if strings.TrimSpace(status) == "" {
		return models.Todo{}, serr.Required("Status")
	}

	todoID, err := uuid.Parse(id)
	if err != nil {
		return models.Todo{}, serr.ErrInvalidInput
	}

	return s.repo.UpdateStatus(ctx, todoID, status)
}

// Delete удаляет задачу по id.
// Удаление несуществующего id неотличимо от успеха.
//
// Ошибки:
//   - ErrInvalidInput — id не является валидным UUID.
func (s *TodosService) Delete(ctx context.Context, id string) error {
	todoID, err := uuid.Parse(id)
	if err != nil {
		return serr.ErrInvalidInput
	}
	return s.repo.Delete(ctx, todoID)
}
