package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"anonbox/auth"
)

const SessionCookie = "session"

// SessionController turns a credential pair into a session cookie. The
// verification itself is delegated to the authorize collaborator; this layer
// only mints and clears tokens.
type SessionController struct {
	Authorizer *auth.Authorizer
	Tokens     *auth.TokenService
	Duration   time.Duration
}

func (s *SessionController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := s.Authorizer.Authorize(c.Request.Context(), username, password)
	if err != nil {
		// Every failure collapses to the same generic rejection.
		c.Redirect(http.StatusFound, "/?error=invalid_credentials")
		return
	}

	token, err := s.Tokens.Issue(user.ID, user.Username)
	if err != nil {
		log.Printf("login: token issue failed: %v", err)
		c.Redirect(http.StatusFound, "/?error=server_error")
		return
	}

	c.SetCookie(SessionCookie, token, int(s.Duration.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/inbox")
}

func (s *SessionController) Logout(c *gin.Context) {
	// Stateless tokens cannot be revoked; dropping the cookie is all logout
	// can do.
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
