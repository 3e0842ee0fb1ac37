package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := []byte("test-secret")

	r := gin.New()
	r.Use(AuthMiddleware(secret, nil))
	r.GET("/whoami", func(c *gin.Context) {
		s := GetSession(c)
		c.JSON(http.StatusOK, gin.H{"user_id": s.UserID, "role": s.Role})
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		tok, err := auth.GenerateToken(entities.Session{UserID: "client-1", Role: entities.RoleClient}, secret, time.Hour)
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"role":"client","user_id":"client-1"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}
