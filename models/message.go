package models

import "time"

// Message is one anonymous message. There is deliberately no sender field.
type Message struct {
	ID               string
	ReceiverUsername string
	Content          string
	ReceiverMsg      string
	CreatedAt        time.Time
}
