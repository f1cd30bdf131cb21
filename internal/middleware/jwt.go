// Package middleware contains reusable HTTP middleware: bearer
// authentication, role checks and rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Semicolon3407/movie-booking/internal/utils"
)

// JWTAuth validates a Bearer access token and stores the user id and
// role in the request context under "user_id" and "role".
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			userID, role, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set("user_id", userID)
			c.Set("role", role)
			return next(c)
		}
	}
}

// UserID reads the authenticated user id stored by JWTAuth.
func UserID(c echo.Context) uint64 {
	id, _ := c.Get("user_id").(uint64)
	return id
}
