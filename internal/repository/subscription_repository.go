package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SubscriptionRepository обеспечивает доступ к Telegram-подпискам на горящие предложения.
type SubscriptionRepository struct {
	db *sqlx.DB
}

// NewSubscriptionRepository создает новый репозиторий подписок на предложения.
func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Subscribe добавляет пользователя в список подписчиков (если еще не подписан).
func (r *SubscriptionRepository) Subscribe(userID int) error {
	_, err := r.db.Exec("INSERT INTO deal_subscriptions (user_id) VALUES ($1) ON CONFLICT DO NOTHING", userID)
	if err != nil {
		return fmt.Errorf("не удалось оформить подписку: %w", err)
	}
	return nil
}

// Unsubscribe удаляет пользователя из подписчиков.
func (r *SubscriptionRepository) Unsubscribe(userID int) error {
	_, err := r.db.Exec("DELETE FROM deal_subscriptions WHERE user_id=$1", userID)
	if err != nil {
		return fmt.Errorf("не удалось отменить подписку: %w", err)
	}
	return nil
}

// IsSubscribed сообщает, подписан ли пользователь на предложения.
func (r *SubscriptionRepository) IsSubscribed(userID int) (bool, error) {
	var exists bool
	err := r.db.Get(&exists, "SELECT EXISTS (SELECT 1 FROM deal_subscriptions WHERE user_id=$1)", userID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}
	return exists, nil
}

// GetAllSubscriberTelegramIDs возвращает Telegram ID всех подписанных пользователей.
func (r *SubscriptionRepository) GetAllSubscriberTelegramIDs() ([]int64, error) {
	ids := []int64{}
	err := r.db.Select(&ids,
		`SELECT u.telegram_id FROM deal_subscriptions s
		 JOIN users u ON s.user_id = u.id`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка подписчиков: %w", err)
	}
	return ids, nil
}
