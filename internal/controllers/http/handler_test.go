package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-service/internal/domain"
	"booking-service/internal/mocks"
	"booking-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(catalogRepo *mocks.MockCatalogRepository, bookingRepo *mocks.MockBookingRepository, notifier *mocks.MockNotifier, publisher *mocks.MockPublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := services.NewCatalogService(catalogRepo)
	booking := services.NewBookingService(bookingRepo, notifier, publisher, "-100200300")

	r := gin.New()
	NewHandler(catalog, booking, nil).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

func orderBody() map[string]any {
	return map[string]any{
		"flight_id":       1,
		"firstname":       "Anna",
		"lastname":        "Smith",
		"surname":         "Maria",
		"email":           "anna@example.com",
		"phone":           "+4915112345678",
		"gender":          "female",
		"date_of_birth":   "1990-04-12",
		"document":        "passport",
		"document_number": "C01X00T47",
		"nationality":     "DE",
		"date":            "2024-08-01",
		"payment_method":  "card",
	}
}

func TestGetFlight_NotFoundReturnsSuccessWithNullData(t *testing.T) {
	catalogRepo := new(mocks.MockCatalogRepository)
	catalogRepo.On("FindFlightByID", uint64(999)).Return(nil, nil)

	r := newTestRouter(catalogRepo, new(mocks.MockBookingRepository), new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, body := doJSON(t, r, http.MethodGet, "/api/flights/999", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	data, present := body["data"]
	assert.True(t, present)
	assert.Nil(t, data)

	catalogRepo.AssertExpectations(t)
}

func TestGetFlight_IncludesCarrier(t *testing.T) {
	catalogRepo := new(mocks.MockCatalogRepository)
	catalogRepo.On("FindFlightByID", uint64(1)).Return(&domain.Flight{
		ID:      1,
		From:    "London",
		To:      "Paris",
		Carrier: &domain.Carrier{ID: 9, Name: "EuroLines"},
	}, nil)

	r := newTestRouter(catalogRepo, new(mocks.MockBookingRepository), new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, body := doJSON(t, r, http.MethodGet, "/api/flights/1", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "London", data["from"])
	carrier := data["carrier"].(map[string]any)
	assert.Equal(t, "EuroLines", carrier["name"])
}

func TestGetReviews_PaginationEnvelope(t *testing.T) {
	catalogRepo := new(mocks.MockCatalogRepository)
	catalogRepo.On("ListReviews", 10, 10).
		Return([]domain.Review{{ID: 15, Name: "Olga", Date: "2024-05-01", Text: "Great trip"}}, int64(25), nil)

	r := newTestRouter(catalogRepo, new(mocks.MockBookingRepository), new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, body := doJSON(t, r, http.MethodGet, "/api/reviews?page=2&limit=10", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(25), body["total"])
	assert.Equal(t, float64(2), body["page"])
	assert.Equal(t, float64(3), body["pages"])

	catalogRepo.AssertExpectations(t)
}

func TestGetCities(t *testing.T) {
	catalogRepo := new(mocks.MockCatalogRepository)
	catalogRepo.On("DepartureCities").Return([]string{"London", "Paris"}, nil)
	catalogRepo.On("ArrivalCities").Return([]string{"Paris", "Berlin"}, nil)

	r := newTestRouter(catalogRepo, new(mocks.MockBookingRepository), new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, body := doJSON(t, r, http.MethodGet, "/api/cities", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"London", "Paris", "Berlin"}, body["data"])
}

func TestCreateOrder_ValidationErrorsBlockInsert(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepository)

	body := orderBody()
	delete(body, "firstname")
	body["email"] = "not-an-email"

	r := newTestRouter(new(mocks.MockCatalogRepository), bookingRepo, new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, resp := doJSON(t, r, http.MethodPost, "/api/orders", body)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["success"])

	errs := resp["errors"].(map[string]any)
	assert.Contains(t, errs, "firstname")
	assert.Contains(t, errs, "email")

	bookingRepo.AssertNotCalled(t, "CreateOrder")
	bookingRepo.AssertNotCalled(t, "FindFlightByID")
}

func TestCreateOrder_FlightNotFound(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepository)
	bookingRepo.On("FindFlightByID", uint64(1)).Return(nil, nil)

	r := newTestRouter(new(mocks.MockCatalogRepository), bookingRepo, new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, resp := doJSON(t, r, http.MethodPost, "/api/orders", orderBody())

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Flight not found", resp["message"])

	bookingRepo.AssertNotCalled(t, "CreateOrder")
}

func TestCreateOrder_EchoesPersistedFields(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepository)
	publisher := new(mocks.MockPublisher)
	bookingRepo.On("FindFlightByID", uint64(1)).Return(&domain.Flight{ID: 1, Price: "49.90"}, nil)
	bookingRepo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 7
	})
	publisher.On("Publish", mock.Anything, domain.EventOrderCreated, mock.Anything).Return(nil).Maybe()

	r := newTestRouter(new(mocks.MockCatalogRepository), bookingRepo, new(mocks.MockNotifier), publisher)
	code, resp := doJSON(t, r, http.MethodPost, "/api/orders", orderBody())

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, float64(1), data["flight_id"])
	assert.Equal(t, "Anna", data["firstname"])
	assert.Equal(t, "anna@example.com", data["email"])

	time.Sleep(100 * time.Millisecond)
	bookingRepo.AssertExpectations(t)
}

func TestGetOrder_SummaryProjection(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepository)
	bookingRepo.On("FindOrderByID", uint64(7)).Return(&domain.Order{
		ID:        7,
		FlightID:  1,
		Firstname: "Anna",
		Email:     "anna@example.com",
		Phone:     "+4915112345678",
		Flight:    &domain.Flight{ID: 1, Price: "49.90"},
	}, nil)

	r := newTestRouter(new(mocks.MockCatalogRepository), bookingRepo, new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, resp := doJSON(t, r, http.MethodGet, "/api/orders/7", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "anna@example.com", data["email"])
	assert.Equal(t, "+4915112345678", data["phone"])
	assert.Equal(t, "49.90", data["price"])
	// The summary deliberately omits passenger identity fields.
	assert.NotContains(t, data, "firstname")
}

func TestCreatePayment_DanglingOrderAccepted(t *testing.T) {
	bookingRepo := new(mocks.MockBookingRepository)
	notifier := new(mocks.MockNotifier)
	publisher := new(mocks.MockPublisher)
	bookingRepo.On("CreatePayment", mock.AnythingOfType("*domain.Payment")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Payment).ID = 3
	})
	notifier.On("Notify", mock.Anything, "-100200300", mock.Anything).Return(nil).Maybe()
	publisher.On("Publish", mock.Anything, domain.EventPaymentCaptured, mock.Anything).Return(nil).Maybe()

	r := newTestRouter(new(mocks.MockCatalogRepository), bookingRepo, notifier, publisher)
	code, resp := doJSON(t, r, http.MethodPost, "/api/payments", map[string]any{
		"order_id": 424242, // no such order; accepted anyway
		"pan":      "4111111111111111",
		"expiry":   "12/27",
		"cvc":      "123",
		"referral": "promo-7",
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(3), data["id"])
	assert.Equal(t, float64(424242), data["order_id"])

	time.Sleep(100 * time.Millisecond)
	bookingRepo.AssertExpectations(t)
	bookingRepo.AssertNotCalled(t, "FindOrderByID")
}

func TestSendSmsCode(t *testing.T) {
	notifier := new(mocks.MockNotifier)
	notifier.On("Notify", mock.Anything, "-100200300", mock.Anything).Return(nil).Maybe()

	r := newTestRouter(new(mocks.MockCatalogRepository), new(mocks.MockBookingRepository), notifier, new(mocks.MockPublisher))
	code, resp := doJSON(t, r, http.MethodPost, "/api/payments/3/send-sms-code", map[string]any{
		"order_id": 42,
		"sms_code": "0954",
	})

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
}

func TestGetCategory_NotFound(t *testing.T) {
	catalogRepo := new(mocks.MockCatalogRepository)
	catalogRepo.On("FindCategoryBySlug", "missing").Return(nil, nil)

	r := newTestRouter(catalogRepo, new(mocks.MockBookingRepository), new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, resp := doJSON(t, r, http.MethodGet, "/api/categories/missing", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Category not found", resp["message"])
}

func TestGetProductsByCategories_LimitsPreviewToFour(t *testing.T) {
	catalogRepo := new(mocks.MockCatalogRepository)
	catalogRepo.On("ListCategories").Return([]domain.Category{{ID: 1, Name: "Tickets", Slug: "tickets"}}, nil)
	catalogRepo.On("ListProductsByCategory", uint64(1), 4).Return([]domain.Product{
		{ID: 1, CategoryID: 1}, {ID: 2, CategoryID: 1},
	}, nil)

	r := newTestRouter(catalogRepo, new(mocks.MockBookingRepository), new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, resp := doJSON(t, r, http.MethodGet, "/api/products-by-categories", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].([]any)
	assert.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "tickets", first["slug"])
	assert.Len(t, first["products"], 2)

	catalogRepo.AssertExpectations(t)
}

func TestStorageErrorsCollapseToGenericMessage(t *testing.T) {
	catalogRepo := new(mocks.MockCatalogRepository)
	catalogRepo.On("ListCategories").Return(nil, assert.AnError)

	r := newTestRouter(catalogRepo, new(mocks.MockBookingRepository), new(mocks.MockNotifier), new(mocks.MockPublisher))
	code, resp := doJSON(t, r, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Internal server error", resp["message"])
	assert.NotContains(t, resp, "data")
}
