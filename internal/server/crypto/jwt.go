// Package crypto содержит криптографические примитивы,
// используемые сервером todo-backend.
//
// В частности, пакет отвечает за:
//   - хэширование и проверку паролей пользователей (argon2id/bcrypt);
//   - генерацию и подпись JWT access-токенов;
//   - настройку параметров токенов (issuer, audience, TTL).
package crypto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig описывает параметры генерации JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Минимальную длину ключа контролирует валидация конфига.
	SigningKey string
	// AccessTTL — срок жизни access-токена.
	AccessTTL time.Duration
}

// NewAccessToken выпускает подписанный access-токен для userID.
//
// Токен несёт только стандартные RegisteredClaims: iss и aud из конфига,
// sub = id пользователя (его потом достаёт auth-middleware), iat = сейчас,
// exp = сейчас + AccessTTL. Refresh-токенов нет: по истечении exp клиент
// логинится заново.
func NewAccessToken(userID string, cfg JWTConfig) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  jwt.ClaimStrings{cfg.Audience},
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	})

	return token.SignedString([]byte(cfg.SigningKey))
}
