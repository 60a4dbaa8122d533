package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"telemind_backend/internal/auth"
	"telemind_backend/internal/logger"
	"telemind_backend/internal/repositories"
	"telemind_backend/pkg/apperrors"
	"telemind_backend/pkg/contextkeys"
)

// AuthMiddleware - middleware проверки JWT. Токен ожидается в заголовке
// Authorization в формате "Bearer <token>". Пользователь из токена
// загружается из базы и кладется в контекст запроса.
func AuthMiddleware(tokens *auth.TokenManager, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrNoToken)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		// Токен мог пережить удаление аккаунта.
		user, err := users.FindByID(userID)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(contextkeys.UserIDContextKey), userID)
		c.Set(string(contextkeys.UserContextKey), user)
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(string(contextkeys.UserIDContextKey))
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
