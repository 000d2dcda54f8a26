package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGreeter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", Greeter)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("should show the generic rejection after a failed login", func(t *testing.T) {
		req := require.New(t)

		w := get("/?error=invalid_credentials")
		req.Equal(http.StatusOK, w.Code)
		req.Contains(w.Body.String(), "Invalid credentials.")
	})

	t.Run("should not echo unknown error codes", func(t *testing.T) {
		req := require.New(t)

		w := get("/?error=<script>alert(1)</script>")
		req.NotContains(w.Body.String(), "alert(1)")
	})

	t.Run("should show the login form", func(t *testing.T) {
		req := require.New(t)

		body := get("/").Body.String()
		req.Contains(body, `action="/auth"`)
		req.Contains(body, `name="username"`)
		req.Contains(body, `name="password"`)
	})
}
