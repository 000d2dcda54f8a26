package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"anonbox/profiles"
	"anonbox/templates"
)

// SendToPage renders /to/:username. The profile is resolved through the
// shared loader so this render warms the cache for the send that follows.
type SendToPage struct {
	Profiles *profiles.Loader
}

func (p *SendToPage) Show(c *gin.Context) {
	// Links get retyped; /to/Alice is alice's page.
	username := strings.ToLower(c.Param("username"))

	profile, found, err := p.Profiles.Load(c.Request.Context(), username)
	if err != nil {
		log.Printf("send page: profile load failed: %v", err)
		c.String(http.StatusBadGateway, "Profile lookup failed")
		return
	}

	// An unknown username is a page state, not an error: no form, no send.
	if !found {
		component := templates.NotFound()
		handler := templ.Handler(component, templ.WithStatus(http.StatusNotFound))
		handler.ServeHTTP(c.Writer, c.Request)
		return
	}

	component := templates.SendTo(profile)
	handler := templ.Handler(component)
	handler.ServeHTTP(c.Writer, c.Request)
}
