package handler

import (
	"net/http"
	"strconv"

	"github.com/nitish1238/travel-booking-app/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	PackageService  *service.PackageService
	BookingService  *service.BookingService
	WishlistService *service.WishlistService
	OfferService    *service.OfferService
	SupportService  *service.SupportService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(ps *service.PackageService, bs *service.BookingService, ws *service.WishlistService,
	os *service.OfferService, ss *service.SupportService) *Handler {
	return &Handler{
		PackageService:  ps,
		BookingService:  bs,
		WishlistService: ws,
		OfferService:    os,
		SupportService:  ss,
	}
}

// Register регистрирует все маршруты API на роутере.
func (h *Handler) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/packages", h.ListPackages)
		api.GET("/packages/:id", h.GetPackage)
		api.GET("/packages/:id/similar", h.SimilarPackages)
		api.GET("/featured", h.FeaturedPackage)
		api.GET("/search", h.SearchPackages)
		api.GET("/search/recent", h.RecentSearches)
		api.GET("/suggest", h.Suggest)
		api.POST("/quote", h.Quote)
		api.POST("/promo", h.CheckPromo)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:reference", h.GetBooking)
		api.GET("/wishlist", h.ListWishlist)
		api.POST("/wishlist/toggle", h.ToggleWishlist)
		api.POST("/newsletter", h.SubscribeNewsletter)
		api.POST("/newsletter/unsubscribe", h.UnsubscribeNewsletter)
		api.POST("/support", h.SubmitSupportMessage)
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// ListPackages обработчик для GET /api/packages - возвращает весь каталог.
func (h *Handler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, h.PackageService.All())
}

// GetPackage обработчик для GET /api/packages/:id - возвращает один пакет.
func (h *Handler) GetPackage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пакета"})
		return
	}
	pkg := h.PackageService.GetByID(id)
	if pkg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Пакет не найден"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// SimilarPackages обработчик для GET /api/packages/:id/similar - похожие пакеты.
func (h *Handler) SimilarPackages(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пакета"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	c.JSON(http.StatusOK, h.PackageService.Recommend(id, limit))
}

// FeaturedPackage обработчик для GET /api/featured - случайный пакет дня.
func (h *Handler) FeaturedPackage(c *gin.Context) {
	pkg := h.PackageService.Featured()
	if pkg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Каталог пуст"})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// SearchPackages обработчик для GET /api/search - поиск с фильтрами цены и длительности.
func (h *Handler) SearchPackages(c *gin.Context) {
	maxPrice, _ := strconv.Atoi(c.Query("max_price"))
	results := h.PackageService.Search(c.Request.Context(),
		c.Query("client"), c.Query("q"), maxPrice, c.Query("duration"))
	c.JSON(http.StatusOK, results)
}

// RecentSearches обработчик для GET /api/search/recent - последние запросы клиента.
func (h *Handler) RecentSearches(c *gin.Context) {
	queries, err := h.PackageService.RecentSearches(c.Request.Context(), c.Query("client"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить историю поиска"})
		return
	}
	c.JSON(http.StatusOK, queries)
}

// Suggest обработчик для GET /api/suggest - подсказки для строки поиска.
func (h *Handler) Suggest(c *gin.Context) {
	c.JSON(http.StatusOK, h.PackageService.Suggest(c.Query("q")))
}
