package middleware

import (
	"net/http"
	"strings"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/infrastructure/auth"
	"plaiz_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// AuthMiddleware turns the bearer token into an entities.Session on the gin
// context. Requests without a valid token stop here with 401.
func AuthMiddleware(secret []byte, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		s, err := auth.ParseToken(strings.TrimSpace(token), secret)
		if err != nil {
			log.Debug("[auth][middleware] token rejected", zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		SetSession(c, s)
		c.Next()
	}
}

func SetSession(c *gin.Context, s entities.Session) {
	c.Set(sessionKey, s)
}

// GetSession returns the caller session, or the zero session when the route
// is not behind AuthMiddleware.
func GetSession(c *gin.Context) entities.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(entities.Session); ok {
			return s
		}
	}
	return entities.Session{}
}
