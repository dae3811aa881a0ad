package handler

import (
	"errors"
	"net/http"

	"github.com/nitish1238/travel-booking-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ListWishlist обработчик для GET /api/wishlist - избранные пакеты клиента.
func (h *Handler) ListWishlist(c *gin.Context) {
	clientID := c.Query("client")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите идентификатор клиента"})
		return
	}
	packages, err := h.WishlistService.List(clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить избранное"})
		return
	}
	c.JSON(http.StatusOK, packages)
}

// ToggleWishlist обработчик для POST /api/wishlist/toggle - добавить/убрать пакет из избранного.
func (h *Handler) ToggleWishlist(c *gin.Context) {
	var req struct {
		Client    string `json:"client"`
		PackageID int    `json:"packageId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Client == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный запрос"})
		return
	}
	wished, err := h.WishlistService.Toggle(req.Client, req.PackageID)
	if err != nil {
		if errors.Is(err, service.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Пакет не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить избранное"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wished": wished})
}

// SubscribeNewsletter обработчик для POST /api/newsletter - подписка на рассылку.
func (h *Handler) SubscribeNewsletter(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный запрос"})
		return
	}
	if err := h.OfferService.SubscribeEmail(req.Email); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите корректный email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось оформить подписку"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": true})
}

// UnsubscribeNewsletter обработчик для POST /api/newsletter/unsubscribe - отмена подписки.
func (h *Handler) UnsubscribeNewsletter(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный запрос"})
		return
	}
	if err := h.OfferService.UnsubscribeEmail(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось отменить подписку"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": false})
}

// SubmitSupportMessage обработчик для POST /api/support - обращение в поддержку с сайта.
func (h *Handler) SubmitSupportMessage(c *gin.Context) {
	var req struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный запрос"})
		return
	}
	if err := h.SupportService.SubmitWeb(req.Email, req.Message); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Укажите корректный email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось отправить обращение"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}
