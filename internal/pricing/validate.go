package pricing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// BookingForm содержит поля формы бронирования, присланные клиентом.
type BookingForm struct {
	PackageID  int    `json:"packageId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Travellers int    `json:"travellers"`
	Notes      string `json:"notes"`
	PromoCode  string `json:"promoCode"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail проверяет, что адрес имеет вид local@domain.tld без пробелов.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateBooking проверяет поля формы бронирования и возвращает сообщения об ошибках
// по именам полей. Пустой результат означает, что форма корректна.
func ValidateBooking(form BookingForm) map[string]string {
	errs := map[string]string{}
	if utf8.RuneCountInString(strings.TrimSpace(form.Name)) < 2 {
		errs["name"] = "Укажите полное имя"
	}
	if !ValidEmail(strings.TrimSpace(form.Email)) {
		errs["email"] = "Укажите корректный email"
	}
	if form.Travellers < 1 {
		errs["travellers"] = "Нужен минимум один путешественник"
	}
	return errs
}
