//go:build unit
// +build unit

package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openmerch/commerce-api/internal/domain/cart"
	"github.com/openmerch/commerce-api/internal/domain/orders"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func cartFixture() *cart.Cart {
	c := cart.New()
	c.AddItem(cart.Item{ProductID: 3, Quantity: 2, Name: "Mechanical Keyboard", Price: 89.99, Stock: 12})
	return c
}

func TestCartHandler_Get_MintsSessionCookie(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	mockCartService.
		On("Get", mock.Anything, mock.AnythingOfType("string")).
		Return(cartFixture(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cart", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mechanical Keyboard")
	assert.Contains(t, w.Header().Get("Set-Cookie"), CartSessionCookie)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_Get_ReusesSessionCookie(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	mockCartService.
		On("Get", mock.Anything, "session-abc").
		Return(cartFixture(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cart", nil)
	req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: "session-abc"})

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_Get_NilService(t *testing.T) {
	handler := NewCartHandler(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/cart", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Get(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCartHandler_AddItem_Success(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	mockCartService.
		On("AddItem", mock.Anything, "session-abc", cart.Item{ProductID: 3, Quantity: 2}).
		Return(cartFixture(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/cart/items", bytes.NewBufferString(`{"product_id": 3, "quantity": 2}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: "session-abc"})

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mechanical Keyboard")
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_AddItem_ValidationError(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/cart/items", bytes.NewBufferString(`{"product_id": 3, "quantity": 0}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCartService.AssertNotCalled(t, "AddItem")
}

func TestCartHandler_AddItem_InsufficientStock(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	mockCartService.
		On("AddItem", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(nil, fmt.Errorf("product 3: %w", orders.ErrInsufficientStock))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/cart/items", bytes.NewBufferString(`{"product_id": 3, "quantity": 50}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddItem(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_AddItem_StoreUnavailable(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	mockCartService.
		On("AddItem", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(nil, fmt.Errorf("cart read: %w", cart.ErrStoreUnavailable))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/cart/items", bytes.NewBufferString(`{"product_id": 3, "quantity": 1}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddItem(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_UpdateItem_ZeroRemovesLine(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	mockCartService.
		On("UpdateItemQuantity", mock.Anything, "session-abc", uint(3), 0).
		Return(cart.New(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/cart/items/3", bytes.NewBufferString(`{"quantity": 0}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: "session-abc"})

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "productID", Value: "3"}}

	handler.UpdateItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"item_count":0`)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_RemoveItem_Success(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	mockCartService.
		On("RemoveItem", mock.Anything, "session-abc", uint(3)).
		Return(cart.New(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/cart/items/3", nil)
	req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: "session-abc"})

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "productID", Value: "3"}}

	handler.RemoveItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_Clear_Success(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	mockCartService.
		On("Clear", mock.Anything, "session-abc").
		Return(cart.New(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/cart", nil)
	req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: "session-abc"})

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Clear(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_Merge_Success(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	mockCartService.
		On("Merge", mock.Anything, "session-abc", mock.Anything).
		Return(cartFixture(), nil)

	requestBody := `{"items": [{"product_id": 3, "quantity": 2, "name": "Mechanical Keyboard", "price": 89.99, "stock": 12}]}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/cart/merge", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: CartSessionCookie, Value: "session-abc"})

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Merge(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCartService.AssertExpectations(t)
}

func TestCartHandler_Merge_InvalidItem(t *testing.T) {
	mockCartService := new(MockCartService)
	handler := NewCartHandler(mockCartService)

	requestBody := `{"items": [{"product_id": 3, "quantity": 2}]}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/cart/merge", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Merge(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCartService.AssertNotCalled(t, "Merge")
}
