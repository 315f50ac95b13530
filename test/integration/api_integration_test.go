package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"gift-shop/internal/catalog"
	"gift-shop/internal/handler"
	"gift-shop/internal/model"
	"gift-shop/internal/order"
	"gift-shop/internal/reservation"
	"gift-shop/internal/router"
	"gift-shop/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "integration-test-key"

// newTestServer wires the full stack with an in-memory catalogue and a short
// reservation delay.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := NopLogger()

	cat, err := catalog.New([]model.Product{
		{ID: "mb_student", Name: "MedBase Student", Price: 4990, OldPrice: 8500, Type: model.TypeStudent},
		{ID: "mb_pro", Name: "MedBase Pro", Price: 9990, OldPrice: 16650, Type: model.TypePro},
		{ID: "mb_premium", Name: "MedBase Premium", Price: 14990, OldPrice: 24000, Type: model.TypePremium},
	})
	require.NoError(t, err)

	reserver := reservation.NewMockReserver(
		cat,
		reservation.NewFixedDatePolicy("31.12.2025"),
		&reservation.ReserverConfig{Delay: 10 * time.Millisecond, VendorPrefix: "mb_"},
		logger,
	)

	productHandler := handler.NewProductHandler(service.NewProductService(cat, logger), logger)
	giftHandler := handler.NewGiftHandler(service.NewGiftService(reserver, logger), logger)

	server := httptest.NewServer(router.New(productHandler, giftHandler, testAPIKey, logger))
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, server *httptest.Server, method, path string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestAPI_Health(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_GetProducts(t *testing.T) {
	server := newTestServer(t)

	resp := doRequest(t, server, http.MethodGet, "/api/products", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []model.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	assert.Len(t, products, 3)
}

func TestAPI_GetProductByID(t *testing.T) {
	server := newTestServer(t)

	resp := doRequest(t, server, http.MethodGet, "/api/products/mb_pro", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var product model.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&product))
	assert.Equal(t, "MedBase Pro", product.Name)
}

func TestAPI_PurchaseGift(t *testing.T) {
	server := newTestServer(t)

	resp := doRequest(t, server, http.MethodPost, "/api/gifts", model.PurchaseRequest{
		ProductID:     "mb_student",
		SenderName:    "Иван",
		RecipientName: "Анна",
		Message:       "Поздравляю!",
		Email:         "ivan@example.com",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var cert model.Certificate
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cert))
	assert.Regexp(t, regexp.MustCompile(`^STUDENT-[A-Z0-9]{4}-[A-Z0-9]{4}$`), cert.Code)
	assert.Equal(t, "MedBase Student", cert.ProductName)
	assert.Equal(t, "Анна", cert.RecipientName)
	assert.Equal(t, "31.12.2025", cert.ExpiryDate)
}

func TestAPI_PurchaseGiftValidationFailure(t *testing.T) {
	server := newTestServer(t)

	resp := doRequest(t, server, http.MethodPost, "/api/gifts", model.PurchaseRequest{
		ProductID: "mb_student",
		Email:     "not-an-email",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.FieldErrors, order.FieldEmail)
}

func TestAPI_PurchaseGiftUnknownProduct(t *testing.T) {
	server := newTestServer(t)

	resp := doRequest(t, server, http.MethodPost, "/api/gifts", model.PurchaseRequest{
		ProductID: "mb_enterprise",
		Email:     "ok@example.com",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_MissingAPIKey(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/products")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
