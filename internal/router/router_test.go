package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"civicpulse/internal/auth"
	"civicpulse/internal/handler"
	"civicpulse/internal/model"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name         string
		claims       jwt.Claims
		expectedCode int
	}{
		{
			name:         "admin passes through",
			claims:       &auth.Claims{UserID: auth.AdminID, Email: auth.AdminEmail, Role: model.RoleAdmin},
			expectedCode: http.StatusOK,
		},
		{
			name:         "citizen is rejected",
			claims:       &auth.Claims{UserID: "user-1", Email: "alice@example.com", Role: model.RoleCitizen},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPatch, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(handler.ContextUserKey, &jwt.Token{Claims: tt.claims})

			next := func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}
			err := requireAdmin(next)(c)

			if tt.expectedCode == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				return
			}
			httpErr, ok := err.(*echo.HTTPError)
			assert.True(t, ok)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
			assert.Equal(t, "admin access required", httpErr.Message)
		})
	}
}

func TestRequireAdmin_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := requireAdmin(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedCode  int
		expectedError string
	}{
		{
			name:          "echo http error with string message",
			err:           echo.NewHTTPError(http.StatusForbidden, "admin access required"),
			expectedCode:  http.StatusForbidden,
			expectedError: "admin access required",
		},
		{
			name:          "unclassified error falls back to 500",
			err:           assert.AnError,
			expectedCode:  http.StatusInternalServerError,
			expectedError: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			httpErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)
			var body map[string]string
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedError, body["error"])
		})
	}
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, splitOrigins(""))
	assert.Equal(t, []string{"*"}, splitOrigins("*"))
	assert.Equal(t,
		[]string{"https://app.example.com", "http://localhost:3000"},
		splitOrigins("https://app.example.com, http://localhost:3000"),
	)
}
