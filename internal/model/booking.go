package model

import "time"

// Booking представляет подтвержденную заявку на бронирование пакета с рассчитанной стоимостью.
// Запись создается один раз при подтверждении и после этого не изменяется.
type Booking struct {
	ID         int       `db:"id" json:"id"`
	Reference  string    `db:"reference" json:"reference"` // номер брони вида "BK<миллисекунды>"
	PackageID  int       `db:"package_id" json:"packageId"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Travellers int       `db:"travellers" json:"travellers"`
	Notes      string    `db:"notes" json:"notes"`
	Subtotal   int       `db:"subtotal" json:"subtotal"`
	Discount   int       `db:"discount" json:"discount"`
	Tax        int       `db:"tax" json:"tax"`
	Total      int       `db:"total" json:"total"`
	PromoCode  *string   `db:"promo_code" json:"promoCode,omitempty"` // NULL, если промокод не применялся
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
