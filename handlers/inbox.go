package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"anonbox/models"
	"anonbox/storage"
	"anonbox/templates"
)

// InboxPage renders the logged-in user's received messages, newest first.
type InboxPage struct {
	Messages storage.MessageStore
}

func (p *InboxPage) Show(c *gin.Context) {
	username := c.GetString("username")

	messages, err := p.Messages.MessagesForReceiver(c.Request.Context(), username, models.InboxLimit)
	if err != nil {
		log.Printf("inbox: query failed: %v", err)
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	component := templates.Inbox(username, messages)
	handler := templ.Handler(component)
	handler.ServeHTTP(c.Writer, c.Request)
}
