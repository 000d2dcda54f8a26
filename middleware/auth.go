package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anonbox/auth"
	"anonbox/controllers"
)

// AuthMiddleware verifies the session cookie and re-derives the display
// identity from the token claims. Anything wrong with the token clears the
// cookie and bounces to the login page.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(controllers.SessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/?error=no_session")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(cookie)
		if err != nil {
			c.SetCookie(controllers.SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/?error=session_expired")
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("username", claims.Username)
		c.Next()
	}
}
