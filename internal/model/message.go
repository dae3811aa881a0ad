package model

import "time"

// SupportMessage представляет обращение в поддержку: из веб-формы или от пользователя бота.
type SupportMessage struct {
	ID        int       `db:"id"`
	UserID    *int      `db:"user_id"` // пользователь бота, если обращение пришло из Telegram, иначе NULL
	Email     string    `db:"email"`   // контактный email для обращений с сайта
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}
