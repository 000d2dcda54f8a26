package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"anonbox/auth"
)

func newLoginRouter(authorizeURL string, tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	session := &SessionController{
		Authorizer: auth.NewAuthorizer(authorizeURL, time.Second),
		Tokens:     tokens,
		Duration:   time.Hour,
	}

	r := gin.New()
	r.POST("/auth", session.Login)
	r.POST("/logout", session.Logout)
	return r
}

func TestLogin(t *testing.T) {
	authorize := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)

		if creds["username"] == "bob" && creds["password"] == "hunter22" {
			json.NewEncoder(w).Encode(map[string]string{"id": "user-7", "username": "bob"})
			return
		}
		http.Error(w, `{"error":"Invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer authorize.Close()

	tokens := auth.NewTokenService("test_secret_key", time.Hour)
	r := newLoginRouter(authorize.URL, tokens)

	t.Run("should set a session cookie and redirect to the inbox", func(t *testing.T) {
		req := require.New(t)

		w := postForm(r, "/auth", url.Values{"username": {"bob"}, "password": {"hunter22"}})
		req.Equal(http.StatusFound, w.Code)
		req.Equal("/inbox", w.Header().Get("Location"))

		var sessionValue string
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == SessionCookie {
				sessionValue = cookie.Value
			}
		}
		req.NotEmpty(sessionValue)

		claims, err := tokens.Verify(sessionValue)
		req.NoError(err)
		req.Equal("user-7", claims.Subject)
		req.Equal("bob", claims.Username)
	})

	t.Run("should redirect with the generic error on rejection", func(t *testing.T) {
		req := require.New(t)

		w := postForm(r, "/auth", url.Values{"username": {"bob"}, "password": {"wrong"}})
		req.Equal(http.StatusFound, w.Code)
		req.Equal("/?error=invalid_credentials", w.Header().Get("Location"))
		req.Empty(w.Result().Cookies())
	})

	t.Run("logout should clear the cookie", func(t *testing.T) {
		req := require.New(t)

		w := postForm(r, "/logout", url.Values{})
		req.Equal(http.StatusFound, w.Code)

		cleared := false
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == SessionCookie && cookie.MaxAge < 0 {
				cleared = true
			}
		}
		req.True(cleared)
	})
}
