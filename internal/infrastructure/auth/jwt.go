package auth

import (
	"errors"
	"time"

	"plaiz_studio/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("missing JWT secret")
)

// Claims carries the caller identity issued by the identity service.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func GenerateToken(s entities.Session, secretKey []byte, validityDuration time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", ErrMissingSecret
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: s.UserID,
		Role:   string(s.Role),
	})

	return token.SignedString(secretKey)
}

// ParseToken validates the signature and expiry and returns the session.
func ParseToken(tokenString string, secretKey []byte) (entities.Session, error) {
	if len(secretKey) == 0 {
		return entities.Session{}, ErrMissingSecret
	}
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entities.Session{}, err
	}
	if !token.Valid {
		return entities.Session{}, ErrInvalidToken
	}

	role, ok := entities.ParseRole(claims.Role)
	if !ok || claims.UserID == "" {
		return entities.Session{}, ErrInvalidToken
	}
	return entities.Session{UserID: claims.UserID, Role: role}, nil
}
