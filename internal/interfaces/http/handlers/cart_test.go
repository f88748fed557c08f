// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brisknbrew/cafe-backend/internal/domain/cart"
)

func newCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewCartHandler(cart.NewService(cart.NewMemoryRepository(), logger))

	router := gin.New()
	router.GET("/cart", handler.GetCart)
	router.POST("/cart/items", handler.AddToCart)
	router.DELETE("/cart/items/:index", handler.RemoveItem)
	router.DELETE("/cart", handler.ClearCart)
	router.GET("/cart/count", handler.GetCartCount)
	return router
}

type cartEnvelope struct {
	Data cart.CartResponse `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie() *http.Cookie {
	return &http.Cookie{Name: "session_id", Value: "test-session"}
}

func TestAddToCartEndpoint(t *testing.T) {
	router := newCartRouter()

	w := doJSON(t, router, http.MethodPost, "/cart/items",
		gin.H{"name": "Iced Latte", "price": 125, "quantity": 2}, sessionCookie())
	require.Equal(t, http.StatusOK, w.Code)

	var envelope cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Items, 1)
	assert.Equal(t, 2, envelope.Data.Totals.TotalQuantity)
	assert.InDelta(t, 250, envelope.Data.Totals.TotalAmount, 1e-9)
}

func TestAddToCartRejectsZeroQuantity(t *testing.T) {
	router := newCartRouter()

	w := doJSON(t, router, http.MethodPost, "/cart/items",
		gin.H{"name": "Iced Latte", "price": 125, "quantity": 0}, sessionCookie())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveItemEndpointOutOfRange(t *testing.T) {
	router := newCartRouter()

	w := doJSON(t, router, http.MethodPost, "/cart/items",
		gin.H{"name": "Americano", "price": 95, "quantity": 1}, sessionCookie())
	require.Equal(t, http.StatusOK, w.Code)

	// Removing a position that does not exist leaves the cart as it was.
	w = doJSON(t, router, http.MethodDelete, "/cart/items/7", nil, sessionCookie())
	require.Equal(t, http.StatusOK, w.Code)

	var envelope cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Items, 1)
}

func TestClearCartEndpoint(t *testing.T) {
	router := newCartRouter()

	w := doJSON(t, router, http.MethodPost, "/cart/items",
		gin.H{"name": "Americano", "price": 95, "quantity": 3}, sessionCookie())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/cart", nil, sessionCookie())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart/count", nil, sessionCookie())
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"message":"Cart count retrieved successfully","data":{"count":0}}`,
		w.Body.String())
}

func TestCartSessionsAreIsolated(t *testing.T) {
	router := newCartRouter()

	w := doJSON(t, router, http.MethodPost, "/cart/items",
		gin.H{"name": "Mocha", "price": 110, "quantity": 1},
		&http.Cookie{Name: "session_id", Value: "session-a"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/cart", nil,
		&http.Cookie{Name: "session_id", Value: "session-b"})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope cartEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Data.Items)
}
