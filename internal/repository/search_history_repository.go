package repository

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// historyLimit - сколько последних запросов хранится для каждого клиента.
const historyLimit = 6

// SearchHistoryRepository хранит последние поисковые запросы клиентов в Redis.
type SearchHistoryRepository struct {
	client *redis.Client
}

// NewSearchHistoryRepository создает новый репозиторий истории поиска.
func NewSearchHistoryRepository(client *redis.Client) *SearchHistoryRepository {
	return &SearchHistoryRepository{client: client}
}

func historyKey(clientID string) string {
	return "recent_searches:" + clientID
}

// Record добавляет запрос в начало истории клиента, убирая дубликат и обрезая список.
func (r *SearchHistoryRepository) Record(ctx context.Context, clientID, query string) error {
	key := historyKey(clientID)
	pipe := r.client.TxPipeline()
	pipe.LRem(ctx, key, 0, query)
	pipe.LPush(ctx, key, query)
	pipe.LTrim(ctx, key, 0, historyLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("не удалось сохранить историю поиска: %w", err)
	}
	return nil
}

// List возвращает последние запросы клиента, новые первыми.
func (r *SearchHistoryRepository) List(ctx context.Context, clientID string) ([]string, error) {
	queries, err := r.client.LRange(ctx, historyKey(clientID), 0, historyLimit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("не удалось получить историю поиска: %w", err)
	}
	return queries, nil
}
