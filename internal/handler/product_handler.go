package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ProductHandler handles catalogue HTTP requests. The store scope always
// comes from the authenticated token, never from the request.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// storeID extracts the authenticated store from the request context.
func (h *ProductHandler) storeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	storeID, ok := middleware.StoreIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "missing store context", h.logger)
		return 0, false
	}
	return storeID, true
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	storeID, ok := h.storeID(w, r)
	if !ok {
		return
	}

	products, err := h.service.List(r.Context(), storeID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// Categories handles GET /api/products/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	storeID, ok := h.storeID(w, r)
	if !ok {
		return
	}

	categories, err := h.service.Categories(r.Context(), storeID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// CategoryCounts handles GET /api/products/category-counts requests.
func (h *ProductHandler) CategoryCounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	storeID, ok := h.storeID(w, r)
	if !ok {
		return
	}

	counts, err := h.service.CategoryCounts(r.Context(), storeID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if counts == nil {
		counts = []model.CategoryCount{}
	}
	writeJSON(w, http.StatusOK, counts)
}

// Add handles POST /api/products/add requests.
func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	storeID, ok := h.storeID(w, r)
	if !ok {
		return
	}

	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	product.StoreID = storeID

	if err := h.service.Add(r.Context(), &product); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Product added successfully"})
}

// Filter handles GET /api/products/filter requests.
func (h *ProductHandler) Filter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidation, "method not allowed", h.logger)
		return
	}

	storeID, ok := h.storeID(w, r)
	if !ok {
		return
	}

	filter, err := parseProductFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, err.Error(), h.logger)
		return
	}

	products, err := h.service.Filter(r.Context(), storeID, filter)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// parseProductFilter maps the allowed query parameters onto a ProductFilter.
// Unknown parameters are ignored; malformed values are rejected.
func parseProductFilter(r *http.Request) (model.ProductFilter, error) {
	q := r.URL.Query()
	filter := model.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		InStock:  q.Get("inStock") == "true",
	}

	if v := q.Get("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filter, model.NewDomainError(model.ErrCodeValidation, "invalid minPrice")
		}
		filter.MinPrice = &d
	}

	if v := q.Get("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filter, model.NewDomainError(model.ErrCodeValidation, "invalid maxPrice")
		}
		filter.MaxPrice = &d
	}

	if start, end := q.Get("startDate"), q.Get("endDate"); start != "" && end != "" {
		startDate, err := time.Parse("2006-01-02", start)
		if err != nil {
			return filter, model.NewDomainError(model.ErrCodeValidation, "invalid startDate")
		}
		endDate, err := time.Parse("2006-01-02", end)
		if err != nil {
			return filter, model.NewDomainError(model.ErrCodeValidation, "invalid endDate")
		}
		filter.StartDate = &startDate
		filter.EndDate = &endDate
	}

	if v := q.Get("minSold"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, model.NewDomainError(model.ErrCodeValidation, "invalid minSold")
		}
		filter.MinSold = &n
	}

	if v := q.Get("maxSold"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, model.NewDomainError(model.ErrCodeValidation, "invalid maxSold")
		}
		filter.MaxSold = &n
	}

	return filter, nil
}
