package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBookingAllFieldsInvalid(t *testing.T) {
	errs := ValidateBooking(BookingForm{Name: "A", Email: "bad", Travellers: 0})
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "travellers")
}

func TestValidateBookingValidForm(t *testing.T) {
	errs := ValidateBooking(BookingForm{Name: "Jane Doe", Email: "jane@x.com", Travellers: 2})
	assert.Empty(t, errs)
}

func TestValidateBookingNameRules(t *testing.T) {
	assert.Contains(t, ValidateBooking(BookingForm{Name: "", Email: "a@b.c", Travellers: 1}), "name")
	assert.Contains(t, ValidateBooking(BookingForm{Name: "  X  ", Email: "a@b.c", Travellers: 1}), "name")
	assert.Empty(t, ValidateBooking(BookingForm{Name: "Ян", Email: "a@b.c", Travellers: 1}))
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jane@x.com", "a@b.co", "user.name+tag@sub.domain.org"}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}
	invalid := []string{"", "bad", "a@b", "a b@c.d", "a@b .c", "@x.com", "a@.com "}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}
