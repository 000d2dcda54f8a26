package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"anonbox/models"
	"anonbox/profiles"
)

type staticProfiles map[string]models.Profile

func (s staticProfiles) FetchProfile(ctx context.Context, username string) (models.Profile, bool, error) {
	p, ok := s[username]
	return p, ok, nil
}

func TestSendToPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	known := staticProfiles{"alice": {Username: "alice", Message: "Ask me anything!"}}
	page := &SendToPage{Profiles: profiles.NewLoader(known, time.Minute)}

	r := gin.New()
	r.GET("/to/:username", page.Show)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	t.Run("should render the prompt and the send form", func(t *testing.T) {
		req := require.New(t)

		w := get("/to/alice")
		req.Equal(http.StatusOK, w.Code)

		body := w.Body.String()
		req.Contains(body, "Ask me anything!")
		req.Contains(body, "alice")
		req.Contains(body, "<form")
		req.Contains(body, `maxlength="200"`)
	})

	t.Run("should allow error fragments to swap despite their status", func(t *testing.T) {
		req := require.New(t)

		// The send endpoint answers validation and insert failures with
		// 400/500 bodies; stock htmx refuses to swap those unless the page
		// opts in.
		body := get("/to/alice").Body.String()
		req.Contains(body, "htmx:beforeSwap")
		req.Contains(body, "shouldSwap = true")
	})

	t.Run("should render the lost page without a form for unknown users", func(t *testing.T) {
		req := require.New(t)

		w := get("/to/ghost")
		req.Equal(http.StatusNotFound, w.Code)

		body := w.Body.String()
		req.Contains(body, "Are you lost?")
		req.NotContains(body, "<form")
	})
}
