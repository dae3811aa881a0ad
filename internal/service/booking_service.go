package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/nitish1238/travel-booking-app/internal/catalog"
	"github.com/nitish1238/travel-booking-app/internal/model"
	"github.com/nitish1238/travel-booking-app/internal/pricing"
	"github.com/nitish1238/travel-booking-app/internal/repository"
)

// BookingService содержит бизнес-логику оформления бронирований.
type BookingService struct {
	store       *catalog.Store
	bookingRepo *repository.BookingRepository
}

// NewBookingService создает новый сервис бронирований.
func NewBookingService(store *catalog.Store, bookingRepo *repository.BookingRepository) *BookingService {
	return &BookingService{store: store, bookingRepo: bookingRepo}
}

// Quote рассчитывает стоимость бронирования пакета для заданного числа путешественников.
// Второй результат сообщает, был ли применен промокод.
func (s *BookingService) Quote(packageID, travellers int, promoCode string) (*pricing.Quote, bool, error) {
	pkg := s.store.GetByID(packageID)
	if pkg == nil {
		return nil, false, ErrPackageNotFound
	}
	promoApplied := pricing.ValidatePromo(promoCode)
	quote := pricing.ComputePrice(pkg.Price, travellers, promoApplied)
	return &quote, promoApplied, nil
}

// CreateBooking проверяет форму, рассчитывает стоимость и сохраняет бронирование.
// Ошибки валидации возвращаются картой "поле -> сообщение", а не ошибкой.
func (s *BookingService) CreateBooking(form pricing.BookingForm) (*model.Booking, map[string]string, error) {
	if errs := pricing.ValidateBooking(form); len(errs) > 0 {
		return nil, errs, nil
	}
	pkg := s.store.GetByID(form.PackageID)
	if pkg == nil {
		return nil, map[string]string{"packageId": "Пакет не найден"}, nil
	}

	promoApplied := pricing.ValidatePromo(form.PromoCode)
	quote := pricing.ComputePrice(pkg.Price, form.Travellers, promoApplied)

	now := time.Now().UTC()
	booking := &model.Booking{
		Reference:  fmt.Sprintf("BK%d", now.UnixMilli()),
		PackageID:  pkg.ID,
		Name:       strings.TrimSpace(form.Name),
		Email:      strings.TrimSpace(form.Email),
		Travellers: form.Travellers,
		Notes:      form.Notes,
		Subtotal:   quote.Subtotal,
		Discount:   quote.Discount,
		Tax:        quote.Tax,
		Total:      quote.Total,
		CreatedAt:  now,
	}
	if promoApplied {
		code := strings.ToUpper(strings.TrimSpace(form.PromoCode))
		booking.PromoCode = &code
	}

	id, err := s.bookingRepo.Create(booking)
	if err != nil {
		return nil, nil, err
	}
	booking.ID = id
	return booking, nil, nil
}

// GetByReference возвращает бронирование по его номеру.
func (s *BookingService) GetByReference(reference string) (*model.Booking, error) {
	return s.bookingRepo.GetByReference(strings.TrimSpace(reference))
}

// ListByEmail возвращает бронирования клиента по email.
func (s *BookingService) ListByEmail(email string) ([]model.Booking, error) {
	return s.bookingRepo.ListByEmail(strings.TrimSpace(email))
}
