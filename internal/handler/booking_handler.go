package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/nitish1238/travel-booking-app/internal/pricing"
	"github.com/nitish1238/travel-booking-app/internal/service"

	"github.com/gin-gonic/gin"
)

// Quote обработчик для POST /api/quote - живая разбивка стоимости для формы бронирования.
func (h *Handler) Quote(c *gin.Context) {
	var req struct {
		PackageID  int    `json:"packageId"`
		Travellers int    `json:"travellers"`
		PromoCode  string `json:"promoCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный запрос"})
		return
	}
	quote, promoApplied, err := h.BookingService.Quote(req.PackageID, req.Travellers, req.PromoCode)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Пакет не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось рассчитать стоимость"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote, "promoApplied": promoApplied})
}

// CheckPromo обработчик для POST /api/promo - проверка промокода.
func (h *Handler) CheckPromo(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный запрос"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": pricing.ValidatePromo(req.Code)})
}

// CreateBooking обработчик для POST /api/bookings - оформление бронирования.
func (h *Handler) CreateBooking(c *gin.Context) {
	var form pricing.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный запрос"})
		return
	}
	booking, fieldErrs, err := h.BookingService.CreateBooking(form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить бронирование"})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBooking обработчик для GET /api/bookings/:reference - бронирование по номеру.
func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.BookingService.GetByReference(c.Param("reference"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Бронирование не найдено"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить бронирование"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookings обработчик для GET /api/bookings - бронирования клиента по email.
func (h *Handler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите email"})
		return
	}
	bookings, err := h.BookingService.ListByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить бронирования"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
