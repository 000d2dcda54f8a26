package handlers

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"anonbox/templates"
)

var signupErrors = map[string]string{
	"invalid_input":  "Usernames are 3-32 letters or digits, passwords at least 8 characters.",
	"username_taken": "That username is taken.",
	"server_error":   "Something went wrong. Try again.",
}

// CreatePage serves the account creation page ("Create your link").
func CreatePage(c *gin.Context) {
	component := templates.Create(signupErrors[c.Query("error")])
	handler := templ.Handler(component)
	handler.ServeHTTP(c.Writer, c.Request)
}
