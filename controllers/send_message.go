package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"anonbox/models"
	"anonbox/profiles"
	"anonbox/storage"
	"anonbox/templates"
)

// SendController handles the anonymous send interaction on /to/:username.
// POST /to/:username/send moves Composing -> Sent (or back to Composing with
// an inline error); GET /to/:username/compose is the "Send again" transition.
type SendController struct {
	Messages storage.MessageStore
	Profiles *profiles.Loader
	Hub      *Hub
}

type sendForm struct {
	Content string `validate:"required,min=1,max=200"`
}

func (s *SendController) SendMessage(c *gin.Context) {
	// Lowercased so the stored receiver matches the recipient's login name
	// however the link was typed.
	username := strings.ToLower(c.Param("username"))

	profile, found, err := s.Profiles.Load(c.Request.Context(), username)
	if err != nil {
		log.Printf("send: profile load failed: %v", err)
		c.String(http.StatusBadGateway, "Profile lookup failed")
		return
	}
	// A send is only valid against a resolved profile. The form is never
	// rendered without one, so this is a direct post or a deleted account.
	if !found {
		c.String(http.StatusNotFound, "User not found")
		return
	}

	form := sendForm{Content: strings.TrimSpace(c.PostForm("content"))}
	if err := validate.Struct(form); err != nil {
		c.Header("Content-Type", "text/html")
		c.String(http.StatusBadRequest, templates.ComposeForm(username, form.Content, "Messages must be 1-200 characters."))
		return
	}

	msg, err := s.Messages.SaveMessage(c.Request.Context(), models.Message{
		ReceiverUsername: username,
		Content:          form.Content,
		ReceiverMsg:      profile.Message,
	})
	if err != nil {
		log.Printf("send: insert failed: %v", err)
		c.Header("Content-Type", "text/html")
		c.String(http.StatusInternalServerError, templates.ComposeForm(username, form.Content, "Could not send your message. Try again."))
		return
	}

	s.Hub.Notify(username, templates.InboxMessage(msg))

	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, templates.SentConfirmation(username, msg.Content))
}

// Compose returns the empty composing form. "Send again" targets it, which
// is what clears the previous message text.
func (s *SendController) Compose(c *gin.Context) {
	username := strings.ToLower(c.Param("username"))

	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, templates.ComposeForm(username, "", ""))
}
