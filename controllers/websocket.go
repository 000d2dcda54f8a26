package controllers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Client struct {
	conn  *websocket.Conn
	mutex sync.Mutex
}

type delivery struct {
	username string
	html     string
}

// Hub pushes rendered message fragments to connected recipients. Clients
// register under their username; a delivery only reaches that user's open
// inbox tabs.
type Hub struct {
	clients map[string]map[*Client]bool
	deliver chan delivery
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]bool),
		deliver: make(chan delivery),
	}
}

// Notify queues an inbox fragment for every open connection of username.
func (h *Hub) Notify(username, html string) {
	h.deliver <- delivery{username: username, html: html}
}

func (h *Hub) Run() {
	for d := range h.deliver {
		h.mutex.Lock()
		for client := range h.clients[d.username] {
			client.mutex.Lock()
			err := client.conn.WriteMessage(websocket.TextMessage, []byte(d.html))
			client.mutex.Unlock()
			if err != nil {
				client.conn.Close()
				delete(h.clients[d.username], client)
			}
		}
		h.mutex.Unlock()
	}
}

func (h *Hub) register(username string, client *Client) {
	h.mutex.Lock()
	if h.clients[username] == nil {
		h.clients[username] = make(map[*Client]bool)
	}
	h.clients[username][client] = true
	h.mutex.Unlock()
}

func (h *Hub) unregister(username string, client *Client) {
	h.mutex.Lock()
	delete(h.clients[username], client)
	if len(h.clients[username]) == 0 {
		delete(h.clients, username)
	}
	h.mutex.Unlock()
}

// InboxSocket upgrades an authenticated request and keeps the connection
// registered until the client goes away. Inbound frames are ignored; the
// socket is push-only.
func (h *Hub) InboxSocket(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	client := &Client{conn: conn}
	h.register(username, client)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			client.mutex.Lock()
			client.conn.Close()
			client.mutex.Unlock()
			h.unregister(username, client)
			return
		}
	}
}
