// Package middleware holds the echo middleware of the service: session
// extraction, the submission rate limiter and request logging.
package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/devmahbe/crime-reporting-system/internal/models"
)

const sessionContextKey = "session"

// WithSession parses the bearer token issued by the auth collaborator
// and, when valid, stores the resulting session in the request context.
// Requests without a valid token proceed unauthenticated; rejecting
// them is the handlers' call, so the 401 carries the intake pipeline's
// own payload shape.
func WithSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if auth == "" {
				return next(c)
			}
			tokenString := strings.TrimPrefix(auth, "Bearer ")

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return next(c)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return next(c)
			}

			var sess models.Session
			if v, ok := claims["userId"].(string); ok {
				sess.UserID = v
			}
			if v, ok := claims["username"].(string); ok {
				sess.Username = v
			}
			SetSession(c, sess)

			return next(c)
		}
	}
}

// SetSession stores the session in the request context.
func SetSession(c echo.Context, sess models.Session) {
	c.Set(sessionContextKey, sess)
}

// SessionFromContext returns the session stored by WithSession, or the
// zero session when the request is unauthenticated.
func SessionFromContext(c echo.Context) models.Session {
	if sess, ok := c.Get(sessionContextKey).(models.Session); ok {
		return sess
	}
	return models.Session{}
}
