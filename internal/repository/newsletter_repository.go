package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// NewsletterRepository обеспечивает доступ к подписчикам email-рассылки.
type NewsletterRepository struct {
	db *sqlx.DB
}

// NewNewsletterRepository создает новый репозиторий подписчиков рассылки.
func NewNewsletterRepository(db *sqlx.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Subscribe добавляет адрес в список подписчиков (если еще не подписан).
func (r *NewsletterRepository) Subscribe(email string) error {
	_, err := r.db.Exec("INSERT INTO newsletter_subscribers (email) VALUES ($1) ON CONFLICT DO NOTHING", email)
	if err != nil {
		return fmt.Errorf("не удалось оформить подписку на рассылку: %w", err)
	}
	return nil
}

// Unsubscribe удаляет адрес из подписчиков.
func (r *NewsletterRepository) Unsubscribe(email string) error {
	_, err := r.db.Exec("DELETE FROM newsletter_subscribers WHERE email=$1", email)
	if err != nil {
		return fmt.Errorf("не удалось отменить подписку на рассылку: %w", err)
	}
	return nil
}

// GetAllEmails возвращает адреса всех подписчиков рассылки.
func (r *NewsletterRepository) GetAllEmails() ([]string, error) {
	emails := []string{}
	err := r.db.Select(&emails, "SELECT email FROM newsletter_subscribers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка подписчиков рассылки: %w", err)
	}
	return emails, nil
}
