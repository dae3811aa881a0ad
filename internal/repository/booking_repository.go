package repository

import (
	"fmt"

	"github.com/nitish1238/travel-booking-app/internal/model"

	"github.com/jmoiron/sqlx"
)

// BookingRepository обеспечивает доступ к данным бронирований в базе данных.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository создает новый репозиторий бронирований.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create сохраняет новое бронирование. Возвращает ID созданной записи.
func (r *BookingRepository) Create(b *model.Booking) (int, error) {
	query := `INSERT INTO bookings
	          (reference, package_id, name, email, travellers, notes, subtotal, discount, tax, total, promo_code, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	var id int
	err := r.db.QueryRow(query,
		b.Reference, b.PackageID, b.Name, b.Email, b.Travellers, b.Notes,
		b.Subtotal, b.Discount, b.Tax, b.Total, b.PromoCode, b.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить бронирование: %w", err)
	}
	return id, nil
}

// GetByReference возвращает бронирование по его номеру.
func (r *BookingRepository) GetByReference(reference string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.Get(&booking, "SELECT * FROM bookings WHERE reference=$1", reference)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByEmail возвращает бронирования по email, новые первыми.
func (r *BookingRepository) ListByEmail(email string) ([]model.Booking, error) {
	bookings := []model.Booking{}
	err := r.db.Select(&bookings, "SELECT * FROM bookings WHERE email=$1 ORDER BY created_at DESC", email)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении бронирований: %w", err)
	}
	return bookings, nil
}
