package model

// WishlistItem представляет пакет, добавленный клиентом в избранное.
type WishlistItem struct {
	ID        int    `db:"id"`
	ClientID  string `db:"client_id"` // идентификатор клиента: id браузера или "tg:<telegram_id>"
	PackageID int    `db:"package_id"`
}
