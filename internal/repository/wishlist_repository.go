package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// WishlistRepository обеспечивает доступ к избранным пакетам клиентов в базе данных.
type WishlistRepository struct {
	db *sqlx.DB
}

// NewWishlistRepository создает новый репозиторий избранного.
func NewWishlistRepository(db *sqlx.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Add добавляет пакет в избранное клиента (повторное добавление игнорируется).
func (r *WishlistRepository) Add(clientID string, packageID int) error {
	_, err := r.db.Exec("INSERT INTO wishlist_items (client_id, package_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		clientID, packageID)
	if err != nil {
		return fmt.Errorf("не удалось добавить пакет в избранное: %w", err)
	}
	return nil
}

// Remove убирает пакет из избранного клиента.
func (r *WishlistRepository) Remove(clientID string, packageID int) error {
	_, err := r.db.Exec("DELETE FROM wishlist_items WHERE client_id=$1 AND package_id=$2", clientID, packageID)
	if err != nil {
		return fmt.Errorf("не удалось убрать пакет из избранного: %w", err)
	}
	return nil
}

// Contains сообщает, находится ли пакет в избранном клиента.
func (r *WishlistRepository) Contains(clientID string, packageID int) (bool, error) {
	var exists bool
	err := r.db.Get(&exists,
		"SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE client_id=$1 AND package_id=$2)",
		clientID, packageID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке избранного: %w", err)
	}
	return exists, nil
}

// ListPackageIDs возвращает идентификаторы избранных пакетов клиента в порядке добавления.
func (r *WishlistRepository) ListPackageIDs(clientID string) ([]int, error) {
	ids := []int{}
	err := r.db.Select(&ids, "SELECT package_id FROM wishlist_items WHERE client_id=$1 ORDER BY id", clientID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении избранного: %w", err)
	}
	return ids, nil
}
