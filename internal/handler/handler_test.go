package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nitish1238/travel-booking-app/internal/catalog"
	"github.com/nitish1238/travel-booking-app/internal/model"
	"github.com/nitish1238/travel-booking-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := catalog.New([]model.Package{
		{ID: 1, Name: "Kerala Backwaters Escape", Location: "Alleppey, Kerala", Price: 24999,
			Tags: []string{"beach", "nature", "houseboat"}, Duration: "5 дней"},
		{ID: 2, Name: "Manali Adventure Trek", Location: "Manali, Himachal", Price: 12999,
			Tags: []string{"mountains", "trek", "adventure"}, Duration: "4 дня"},
		{ID: 3, Name: "Goa Beach Party Week", Location: "North Goa", Price: 15999,
			Tags: []string{"beach", "party", "nightlife"}, Duration: "7 дней"},
	})
	require.NoError(t, err)

	h := NewHandler(
		service.NewPackageService(store, nil),
		service.NewBookingService(store, nil),
		service.NewWishlistService(store, nil),
		service.NewOfferService(nil, nil),
		service.NewSupportService(nil, nil),
	)
	router := gin.New()
	h.Register(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListPackages(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(t, router, http.MethodGet, "/api/packages", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var packages []model.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	assert.Len(t, packages, 3)
	assert.Equal(t, "Kerala Backwaters Escape", packages[0].Name)
}

func TestGetPackage(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/packages/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pkg model.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pkg))
	assert.Equal(t, "Manali Adventure Trek", pkg.Name)

	w = doRequest(t, router, http.MethodGet, "/api/packages/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/packages/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimilarPackages(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(t, router, http.MethodGet, "/api/packages/1/similar?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var packages []model.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	require.Len(t, packages, 2)
	// Общий тег beach выводит Гоа вперед
	assert.Equal(t, "Goa Beach Party Week", packages[0].Name)
	for _, p := range packages {
		assert.NotEqual(t, 1, p.ID)
	}
}

func TestSearchPackages(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/search?q=beach", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var packages []model.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	require.Len(t, packages, 2)

	w = doRequest(t, router, http.MethodGet, "/api/search?q=beach&max_price=16000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	packages = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	require.Len(t, packages, 1)
	assert.Equal(t, "Goa Beach Party Week", packages[0].Name)

	w = doRequest(t, router, http.MethodGet, "/api/search?q=xyzzy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSuggest(t *testing.T) {
	router := setupRouter(t)

	// Пустой запрос отдает начало каталога
	w := doRequest(t, router, http.MethodGet, "/api/suggest", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var packages []model.Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	assert.Len(t, packages, 3)

	w = doRequest(t, router, http.MethodGet, "/api/suggest?q=manali", nil)
	require.Equal(t, http.StatusOK, w.Code)
	packages = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &packages))
	require.Len(t, packages, 1)
	assert.Equal(t, "Manali Adventure Trek", packages[0].Name)
}

func TestQuoteEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/quote",
		gin.H{"packageId": 2, "travellers": 2, "promoCode": "TRAVEL10"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Quote struct {
			Subtotal int `json:"subtotal"`
			Discount int `json:"discount"`
			Tax      int `json:"tax"`
			Total    int `json:"total"`
		} `json:"quote"`
		PromoApplied bool `json:"promoApplied"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.PromoApplied)
	assert.Equal(t, 25998, resp.Quote.Subtotal)
	assert.Equal(t, 2500, resp.Quote.Discount)
	assert.Equal(t, 1175, resp.Quote.Tax)
	assert.Equal(t, 24673, resp.Quote.Total)

	w = doRequest(t, router, http.MethodPost, "/api/quote",
		gin.H{"packageId": 99, "travellers": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckPromo(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/promo", gin.H{"code": "welcome"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid": true}`, w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/api/promo", gin.H{"code": "bogus"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid": false}`, w.Body.String())
}

func TestCreateBookingValidation(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/bookings",
		gin.H{"packageId": 1, "name": "A", "email": "bad", "travellers": 0})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 3)
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "travellers")
}

func TestListBookingsRequiresEmail(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(t, router, http.MethodGet, "/api/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWishlistRequiresClient(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(t, router, http.MethodGet, "/api/wishlist", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)
	w := doRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
