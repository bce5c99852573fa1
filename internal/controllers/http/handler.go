package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"booking-service/internal/services"
	"booking-service/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const cacheTTL = 10 * time.Second

type Handler struct {
	catalog *services.CatalogService
	booking *services.BookingService
	rdb     *redis.Client
}

func NewHandler(catalog *services.CatalogService, booking *services.BookingService, rdb *redis.Client) *Handler {
	return &Handler{catalog: catalog, booking: booking, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/reviews", h.GetReviews)
	api.GET("/carriers", h.GetCarriers)
	api.GET("/cities", h.GetCities)
	api.GET("/flights", h.GetFlights)
	api.GET("/flights/:id", h.GetFlight)

	api.POST("/orders", h.CreateOrder)
	api.GET("/orders/:id", h.GetOrder)
	api.POST("/payments", h.CreatePayment)
	api.GET("/payments/:id", h.GetPayment)
	api.POST("/payments/:id/send-sms-code", h.SendSmsCode)

	api.GET("/categories", h.GetCategories)
	api.GET("/categories/:slug", h.GetCategory)
	api.GET("/products-by-categories", h.GetProductsByCategories)
	api.GET("/products/:slug", h.GetProduct)
}

// Every response goes out as HTTP 200; callers are expected to check the
// success flag, not the status code.

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

func respondValidation(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusOK, gin.H{"success": false, "errors": errs})
}

func respondInternal(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusOK, gin.H{"message": "Internal server error"})
}

func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}

func (h *Handler) GetReviews(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, p, err := h.catalog.GetReviews(page, limit)
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows, "total": p.Total, "page": p.Page, "pages": p.Pages})
}

func (h *Handler) GetCarriers(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, p, err := h.catalog.GetCarriers(page, limit)
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows, "total": p.Total, "page": p.Page, "pages": p.Pages})
}

func (h *Handler) GetCities(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.fromCache(ctx, "cities"); ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})
		return
	}

	cities, err := h.catalog.GetCities()
	if err != nil {
		respondInternal(c, err)
		return
	}

	h.toCache(ctx, "cities", cities)
	respondData(c, cities)
}

func (h *Handler) GetFlights(c *gin.Context) {
	page, limit := pageQuery(c)
	rows, p, err := h.catalog.SearchFlights(c.Query("from"), c.Query("to"), page, limit)
	if err != nil {
		respondInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rows, "total": p.Total, "page": p.Page, "pages": p.Pages})
}

// GetFlight answers success with a null payload when nothing matches,
// including an unparseable id.
func (h *Handler) GetFlight(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondData(c, nil)
		return
	}

	flight, err := h.catalog.GetFlight(id)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if flight == nil {
		respondData(c, nil)
		return
	}
	respondData(c, flight)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, "Invalid request body")
		return
	}

	if errs := validation.Validate(payload, validation.OrderRules); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	order := orderFromPayload(payload)
	created, err := h.booking.CreateOrder(c.Request.Context(), order)
	if err != nil {
		if errors.Is(err, services.ErrFlightNotFound) {
			respondMessage(c, "Flight not found")
			return
		}
		respondInternal(c, err)
		return
	}
	respondData(c, created)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondMessage(c, "Order not found")
		return
	}

	order, err := h.booking.GetOrder(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			respondMessage(c, "Order not found")
			return
		}
		respondInternal(c, err)
		return
	}

	summary := OrderSummary{ID: order.ID, Email: order.Email, Phone: order.Phone}
	if order.Flight != nil {
		summary.Price = order.Flight.Price
	}
	respondData(c, summary)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, "Invalid request body")
		return
	}

	if errs := validation.Validate(payload, validation.PaymentRules); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	payment := paymentFromPayload(payload)
	referral := validation.ToString(payload["referral"])

	created, err := h.booking.CreatePayment(c.Request.Context(), payment, referral)
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondData(c, created)
}

func (h *Handler) GetPayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		respondMessage(c, "Payment not found")
		return
	}

	payment, err := h.booking.GetPayment(id)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			respondMessage(c, "Payment not found")
			return
		}
		respondInternal(c, err)
		return
	}
	respondData(c, payment)
}

// SendSmsCode relays the code from the request body; the :id path segment
// is accepted for URL symmetry but the body's order_id is what gets sent.
func (h *Handler) SendSmsCode(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondMessage(c, "Invalid request body")
		return
	}

	if errs := validation.Validate(payload, validation.SmsCodeRules); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	h.booking.SendSmsCode(c.Request.Context(),
		validation.ToUint64(payload["order_id"]),
		validation.ToString(payload["sms_code"]))

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.GetCategories()
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondData(c, categories)
}

func (h *Handler) GetCategory(c *gin.Context) {
	category, products, err := h.catalog.GetCategory(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			respondMessage(c, "Category not found")
			return
		}
		respondInternal(c, err)
		return
	}
	respondData(c, gin.H{"category": category, "products": products})
}

func (h *Handler) GetProductsByCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, ok := h.fromCache(ctx, "products-by-categories"); ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})
		return
	}

	grouped, err := h.catalog.GetProductsByCategories()
	if err != nil {
		respondInternal(c, err)
		return
	}

	h.toCache(ctx, "products-by-categories", grouped)
	respondData(c, grouped)
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			respondMessage(c, "Product not found")
			return
		}
		respondInternal(c, err)
		return
	}
	respondData(c, product)
}

func (h *Handler) fromCache(ctx context.Context, key string) (any, bool) {
	if h.rdb == nil {
		return nil, false
	}
	b, err := h.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var out any
	if err := json.Unmarshal([]byte(b), &out); err != nil {
		return nil, false
	}
	return out, true
}

func (h *Handler) toCache(ctx context.Context, key string, value any) {
	if h.rdb == nil {
		return
	}
	if data, err := json.Marshal(value); err == nil {
		h.rdb.Set(ctx, key, data, cacheTTL)
	}
}
