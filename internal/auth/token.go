package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"telemind_backend/pkg/apperrors"
)

// Claims - полезная нагрузка токена: { userId, iat, exp }
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет HMAC-подписанные токены.
// Секрет приходит из конфигурации при старте; состояния нет,
// отзыв токенов не поддерживается.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создает TokenManager. ttl обычно 7 суток.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue выпускает подписанный токен для пользователя
func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify проверяет подпись и срок действия токена и возвращает
// идентификатор пользователя из claims.
func (m *TokenManager) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.ErrTokenExpired
		}
		return "", apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", apperrors.ErrInvalidToken
	}

	return claims.UserID, nil
}
