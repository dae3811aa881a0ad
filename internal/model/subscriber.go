package model

// Subscriber представляет email-адрес, подписанный на рассылку новостей и предложений.
type Subscriber struct {
	ID    int    `db:"id"`
	Email string `db:"email"`
}
