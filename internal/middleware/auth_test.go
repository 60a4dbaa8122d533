package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telemind_backend/internal/auth"
	"telemind_backend/internal/models"
	"telemind_backend/internal/repositories"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) Create(user *models.User) error { return nil }

func (s *stubUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) FindByUsername(username string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) FindConflict(username, email, mobile string) (string, error) {
	return "", nil
}

func (s *stubUserRepo) Update(id string, fields map[string]interface{}) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) Delete(id string) error { return nil }

func setupAuthTestRouter(tokens *auth.TokenManager, repo repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	userID := "2f6b0c9e-0000-4000-8000-000000000001"
	repo := &stubUserRepo{users: map[string]*models.User{
		userID: {BaseModel: models.BaseModel{ID: userID}, Username: "amy"},
	}}
	router := setupAuthTestRouter(tokens, repo)

	t.Run("no header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "No token provided")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := tokens.Issue(userID)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID)
	})

	t.Run("token of deleted user", func(t *testing.T) {
		token, err := tokens.Issue("2f6b0c9e-0000-4000-8000-00000000dead")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewTokenManager("test-secret", -time.Minute)
		token, err := expired.Issue(userID)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})
}
