package repository

import (
	"fmt"

	"github.com/nitish1238/travel-booking-app/internal/model"

	"github.com/jmoiron/sqlx"
)

// MessageRepository обеспечивает сохранение и получение обращений в поддержку.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository создает новый репозиторий обращений.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Save сохраняет новое обращение в поддержку.
func (r *MessageRepository) Save(msg *model.SupportMessage) error {
	_, err := r.db.Exec(`INSERT INTO support_messages (user_id, email, content, created_at)
	                      VALUES ($1, $2, $3, $4)`,
		msg.UserID, msg.Email, msg.Content, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении обращения: %w", err)
	}
	return nil
}

// ListRecent возвращает последние обращения, новые первыми.
func (r *MessageRepository) ListRecent(limit int) ([]model.SupportMessage, error) {
	messages := []model.SupportMessage{}
	err := r.db.Select(&messages, "SELECT * FROM support_messages ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении обращений: %w", err)
	}
	return messages, nil
}
