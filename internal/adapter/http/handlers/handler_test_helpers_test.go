package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"plaiz_studio/internal/adapter/http/middleware"
	"plaiz_studio/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	clientSession = entities.Session{UserID: "client-1", Role: entities.RoleClient}
	workerSession = entities.Session{UserID: "worker-1", Role: entities.RoleWorker}
	adminSession  = entities.Session{UserID: "admin-1", Role: entities.RoleAdmin}
)

// newTestRouter returns a gin engine whose requests carry s as the caller.
func newTestRouter(s entities.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, s)
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
