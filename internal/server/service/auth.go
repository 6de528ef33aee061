package service

import (
	"context"
	"errors"
	"strings"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/config"
	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-todo-backend/internal/shared/models"

	serr "github.com/IvanChernomyrdin/go-todo-backend/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей
//   - аутентификация (логин)
//   - выпуск access-токенов
type AuthService struct {
	users UsersRepo

	hasher crypto.Hasher
	jwt    crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
//
// Возвращает ошибку, если в конфиге указан неизвестный hasher.
func NewAuthService(users UsersRepo, cfg *config.Config) (*AuthService, error) {
	hasher, err := crypto.NewHasher(
		cfg.Password.Hasher,
		crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		cfg.Password.Bcrypt.Cost,
	)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		users:  users,
		hasher: hasher,
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}, nil
}

// Register регистрирует нового пользователя.
//
// Валидация — проверка наличия полей строго в порядке name, email, password.
// Первое отсутствующее поле выигрывает: клиент получает ровно одно
// сообщение вида "Name is required".
//
// Возвращает:
//   - представление созданного пользователя (без пароля и хэша)
//   - ValidationError при отсутствии поля, ErrAlreadyExists если email занят
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.UserView, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if name == "" {
		return models.UserView{}, serr.Required("Name")
	}
	if email == "" {
		return models.UserView{}, serr.Required("Email")
	}
	if password == "" {
		return models.UserView{}, serr.Required("Password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.UserView{}, serr.ErrInternal
	}

	id, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		return models.UserView{}, err
	}

	return models.UserView{
		ID:    id.String(),
		Name:  name,
		Email: email,
	}, nil
}

// Login аутентифицирует пользователя и выдаёт access-токен.
//
// Поведение:
//   - не раскрывает факт существования email: и "нет такого пользователя",
//     и "неверный пароль" дают одинаковый ErrInvalidCredentials
//
// Ошибки:
//   - ErrInvalidCredentials
//   - ErrInternal
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", serr.ErrInvalidCredentials
	}
	// получаем юзера по email
	userID, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}
	// проверяем пароль
	ok, err := s.hasher.Verify(password, hash)
	if err != nil {
		return "", serr.ErrInternal
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}
	// создаём новый access токен
	access, err := crypto.NewAccessToken(userID.String(), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}

	return access, nil
}
