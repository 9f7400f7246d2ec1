package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"learnbridge/internal/auth"
)

// currentClaims returns the verified claims the JWT middleware stored on the
// context. ok is false when the route is reached without the middleware.
func currentClaims(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}
