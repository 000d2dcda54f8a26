package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"anonbox/models"
)

type staticMessages struct {
	messages []models.Message
	err      error
}

func (s *staticMessages) SaveMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	return msg, nil
}

func (s *staticMessages) MessagesForReceiver(ctx context.Context, username string, limit int) ([]models.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Message
	for _, m := range s.messages {
		if m.ReceiverUsername == username {
			out = append(out, m)
		}
	}
	return out, nil
}

func newInboxRouter(store *staticMessages) *gin.Engine {
	page := &InboxPage{Messages: store}

	r := gin.New()
	r.GET("/inbox", func(c *gin.Context) { c.Set("username", "alice") }, page.Show)
	return r
}

func TestInboxPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	get := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inbox", nil))
		return w
	}

	t.Run("should render received messages with the share link and logout", func(t *testing.T) {
		req := require.New(t)

		store := &staticMessages{messages: []models.Message{
			{ReceiverUsername: "alice", Content: "You are doing great", CreatedAt: time.Now()},
			{ReceiverUsername: "bob", Content: "Not for alice", CreatedAt: time.Now()},
		}}

		w := get(newInboxRouter(store))
		req.Equal(http.StatusOK, w.Code)

		body := w.Body.String()
		req.Contains(body, "You are doing great")
		req.NotContains(body, "Not for alice")
		req.Contains(body, "@alice")
		req.Contains(body, "/to/alice")
		req.Contains(body, `action="/logout"`)
	})

	t.Run("should render an empty inbox without errors", func(t *testing.T) {
		req := require.New(t)

		w := get(newInboxRouter(&staticMessages{}))
		req.Equal(http.StatusOK, w.Code)
		req.Contains(w.Body.String(), `id="messages"`)
	})

	t.Run("should answer 500 when the query fails", func(t *testing.T) {
		req := require.New(t)

		store := &staticMessages{err: errors.New("connection refused")}

		w := get(newInboxRouter(store))
		req.Equal(http.StatusInternalServerError, w.Code)
		req.NotContains(w.Body.String(), "connection refused")
	})
}
