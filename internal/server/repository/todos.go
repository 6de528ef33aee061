package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/shared/models"

	serr "github.com/IvanChernomyrdin/go-todo-backend/internal/shared/errors"
)

// TodosRepository реализует доступ к хранилищу задач (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
//
// Ограничение enum на поле status живёт в самой базе (CHECK-констрейнт),
// поэтому неверный статус всплывает отсюда как ErrTodoValidation.
type TodosRepository struct {
	db *sql.DB
}

// NewTodosRepository создаёт новый экземпляр TodosRepository.
func NewTodosRepository(db *sql.DB) *TodosRepository {
	return &TodosRepository{db: db}
}

const todoColumns = `id, title, description, status, user_id, updated_at, created_at`

// Create сохраняет новую задачу пользователя.
//
// Владелец (userID) проставляется здесь и больше никогда не меняется.
//
// Ошибки:
//   - ErrTodoValidation — статус не прошёл CHECK-констрейнт
//   - ErrInternal — прочие ошибки базы данных
func (r *TodosRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	title string,
	status string,
	description string,
) (models.Todo, error) {

	var t models.Todo

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO todos (user_id, title, status, description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+todoColumns,
		userID,
		title,
		status,
		description,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID, &t.UpdatedAt, &t.CreatedAt)

	if err != nil {
		return models.Todo{}, mapTodoError(err)
	}

	return t, nil
}

// ListByUser возвращает все задачи пользователя в порядке создания.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *TodosRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID, &t.UpdatedAt, &t.CreatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return todos, nil
}

// UpdateStatus меняет статус задачи по её id и возвращает обновлённую запись.
//
// Поиск идёт только по id, без проверки владельца — см. ListByUser,
// где выборка наоборот всегда ограничена пользователем.
//
// Ошибки:
//   - ErrNotFound — задачи с таким id нет
//   - ErrTodoValidation — статус не прошёл CHECK-констрейнт
//   - ErrInternal — прочие ошибки базы данных
func (r *TodosRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (models.Todo, error) {
	var t models.Todo

	err := r.db.QueryRowContext(ctx, `
		UPDATE todos
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+todoColumns,
		id,
		status,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID, &t.UpdatedAt, &t.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Todo{}, serr.ErrNotFound
		}
		return models.Todo{}, mapTodoError(err)
	}

	return t, nil
}

// Delete удаляет задачу по id.
//
// Удаление несуществующего id ошибкой не считается.
func (r *TodosRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return serr.ErrInternal
	}
	return nil
}

// mapTodoError переводит ошибки PostgreSQL в доменные.
// 23514 (check_violation) — нарушение enum статуса.
func mapTodoError(err error) error {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		if pgErr.Code == "23514" { // check_violation
			return fmt.Errorf("%w: status must be active or inactive", serr.ErrTodoValidation)
		}
	}
	return serr.ErrInternal
}
