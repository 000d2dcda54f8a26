package handlers

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"anonbox/templates"
)

var errorMessages = map[string]string{
	"invalid_credentials": "Invalid credentials.",
	"session_expired":     "Your session expired. Log in again.",
	"no_session":          "Log in to see your messages.",
	"server_error":        "Something went wrong. Try again.",
}

// Greeter serves the login page.
func Greeter(c *gin.Context) {
	errorMsg := errorMessages[c.Query("error")]

	notice := ""
	if c.Query("created") != "" {
		notice = "Your link is ready! Log in to see your messages."
	}

	component := templates.Greeter(errorMsg, notice)
	handler := templ.Handler(component)
	handler.ServeHTTP(c.Writer, c.Request)
}
