package tests

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-todo-backend/internal/shared/errors"
)

var todoCols = []string{"id", "title", "description", "status", "user_id", "updated_at", "created_at"}

// Успех
func TestTodosRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)

	id := uuid.New()
	userID := uuid.New()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO todos`).
		WithArgs(userID, "note", "active", "desc").
		WillReturnRows(
			sqlmock.NewRows(todoCols).
				AddRow(id, "note", "desc", "active", userID, now, now),
		)

	got, err := repo.Create(context.Background(), userID, "note", "active", "desc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != id {
		t.Fatalf("expected %v, got %v", id, got.ID)
	}
	if got.Status != "active" || got.Title != "note" || got.UserID != userID {
		t.Fatalf("unexpected todo: %+v", got)
	}
}

// Статус не прошёл CHECK-констрейнт
func TestTodosRepository_Create_InvalidStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)

	pgErr := &pgconn.PgError{
		Code: "23514", // check_violation
	}

	mock.ExpectQuery(`INSERT INTO todos`).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), uuid.New(), "note", "done", "")

	if !errors.Is(err, serr.ErrTodoValidation) {
		t.Fatalf("expected ErrTodoValidation, got %v", err)
	}
}

// Ошибка сервера
func TestTodosRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)

	mock.ExpectQuery(`INSERT INTO todos`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), uuid.New(), "note", "active", "")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Список задач пользователя
func TestTodosRepository_ListByUser_OK(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := repository.NewTodosRepository(db)

	userID := uuid.New()
	id := uuid.New()
	updatedAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(todoCols).
		AddRow(id, "note", "desc", "active", userID, updatedAt, createdAt)

	mock.ExpectQuery(`(?s)SELECT id, title, description, status, user_id, updated_at, created_at.*FROM todos.*WHERE user_id = \$1.*ORDER BY created_at`).
		WithArgs(userID).
		WillReturnRows(rows)

	result, err := repo.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(result))
	}

	got := result[0]
	if got.Title != "note" {
		t.Fatalf("unexpected title: %s", got.Title)
	}
	if got.Description != "desc" {
		t.Fatalf("unexpected description: %s", got.Description)
	}
	if got.Status != "active" {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if got.UserID != userID {
		t.Fatalf("unexpected user_id: %s", got.UserID)
	}
	if !got.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("unexpected updated_at")
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created_at")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sql expectations: %v", err)
	}
}

// Пустой список — не nil, а []
func TestTodosRepository_ListByUser_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT id, title, description, status, user_id, updated_at, created_at`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(todoCols))

	result, err := repo.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(result) != 0 {
		t.Fatalf("expected 0 todos, got %d", len(result))
	}
}

// Тест ошибки БД
func TestTodosRepository_ListByUser_DBError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT id, title, description, status, user_id, updated_at, created_at`).
		WithArgs(userID).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.ListByUser(context.Background(), userID)
	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Смена статуса
func TestTodosRepository_UpdateStatus_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)

	id := uuid.New()
	userID := uuid.New()
	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE todos`).
		WithArgs(id, "inactive").
		WillReturnRows(
			sqlmock.NewRows(todoCols).
				AddRow(id, "note", "", "inactive", userID, now, now),
		)

	got, err := repo.UpdateStatus(context.Background(), id, "inactive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != "inactive" {
		t.Fatalf("unexpected status: %s", got.Status)
	}
}

// Нет такой задачи
func TestTodosRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)

	mock.ExpectQuery(`UPDATE todos`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), uuid.New(), "inactive")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Неверный статус при обновлении
func TestTodosRepository_UpdateStatus_InvalidStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)

	pgErr := &pgconn.PgError{
		Code: "23514", // check_violation
	}

	mock.ExpectQuery(`UPDATE todos`).
		WillReturnError(pgErr)

	_, err := repo.UpdateStatus(context.Background(), uuid.New(), "done")

	if !errors.Is(err, serr.ErrTodoValidation) {
		t.Fatalf("expected ErrTodoValidation, got %v", err)
	}
}

// Удаление
func TestTodosRepository_Delete_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM todos`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Удаление несуществующего id — не ошибка
func TestTodosRepository_Delete_MissingID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM todos`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Ошибка сервера при удалении
func TestTodosRepository_Delete_DBError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewTodosRepository(db)

	mock.ExpectExec(`DELETE FROM todos`).
		WillReturnError(sql.ErrConnDone)

	err := repo.Delete(context.Background(), uuid.New())
	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
