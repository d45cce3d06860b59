package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"civicpulse/internal/auth"
	apierrors "civicpulse/internal/errors"
)

// ContextUserKey is where the JWT middleware stores the verified token.
const ContextUserKey = "user"

// currentIdentity extracts the verified identity placed in the request
// context by the JWT middleware.
func currentIdentity(c echo.Context) (auth.Identity, error) {
	token, ok := c.Get(ContextUserKey).(*jwt.Token)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
	}
	return auth.IdentityFromClaims(claims), nil
}

// respondError maps a service error to its HTTP shape.
func respondError(c echo.Context, err error) error {
	httpErr := apierrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, apierrors.ErrorResponse{Error: httpErr.Message})
}
