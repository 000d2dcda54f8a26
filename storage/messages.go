package storage

import (
	"context"

	"github.com/google/uuid"

	"anonbox/models"
)

// MessageStore is the message persistence contract consumed by the send and
// inbox handlers.
type MessageStore interface {
	SaveMessage(ctx context.Context, msg models.Message) (models.Message, error)
	MessagesForReceiver(ctx context.Context, username string, limit int) ([]models.Message, error)
}

func (s *Store) SaveMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	msg.ID = uuid.New().String()

	err := s.db.QueryRowContext(ctx,
		"INSERT INTO messages (id, receiver_username, content, receiver_msg) VALUES ($1, $2, $3, $4) RETURNING created_at",
		msg.ID, msg.ReceiverUsername, msg.Content, msg.ReceiverMsg,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return models.Message{}, err
	}

	return msg, nil
}

func (s *Store) MessagesForReceiver(ctx context.Context, username string, limit int) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, receiver_username, content, receiver_msg, created_at
		FROM messages
		WHERE receiver_username = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, username, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ReceiverUsername, &m.Content, &m.ReceiverMsg, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
