package v1

import (
	"fmt"
	"net/http"

	"github.com/openmerch/commerce-api/internal/domain/cart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartSessionCookie is the cookie carrying the anonymous cart session id.
const CartSessionCookie = "cart_session_id"

// cartSessionMaxAge matches the store TTL so the cookie and the cart expire
// together.
const cartSessionMaxAge = 24 * 60 * 60

// CartHandler defines the interface for handling cart operations
type CartHandler interface {
	Get(ctx *gin.Context)
	AddItem(ctx *gin.Context)
	UpdateItem(ctx *gin.Context)
	RemoveItem(ctx *gin.Context)
	Clear(ctx *gin.Context)
	Merge(ctx *gin.Context)
}

// cartHandler holds the cart service. The service is nil when Redis is not
// configured; every endpoint then answers 503.
type cartHandler struct {
	cartService cart.Service
}

// NewCartHandler creates a new CartHandler. cartService may be nil.
func NewCartHandler(cartService cart.Service) CartHandler {
	return &cartHandler{cartService: cartService}
}

// session returns the cart session id from the cookie, minting a new one and
// setting the cookie when absent.
func (handler *cartHandler) session(ctx *gin.Context) string {
	sessionID, err := ctx.Cookie(CartSessionCookie)
	if err == nil && sessionID != "" {
		return sessionID
	}

	sessionID = uuid.NewString()
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CartSessionCookie, sessionID, cartSessionMaxAge, "/", "", false, true)
	return sessionID
}

func (handler *cartHandler) unavailable(ctx *gin.Context) bool {
	if handler.cartService != nil {
		return false
	}
	ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: cart.ErrStoreUnavailable.Error()})
	return true
}

// Get handles the GET request to fetch the session cart
// @Summary Fetch the cart for the current session
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} cart.Cart
// @Failure 503 {object} ErrorResponse
// @Router /cart [get]
func (handler *cartHandler) Get(ctx *gin.Context) {
	if handler.unavailable(ctx) {
		return
	}

	c, err := handler.cartService.Get(ctx, handler.session(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// AddItem handles the POST request to add a product to the cart
// @Summary Add a product to the cart
// @Description Add a product line, summing quantities when the product is already in the cart.
// @Tags Cart
// @Accept json
// @Produce json
// @Param requestBody body AddCartItemRequest true "Cart Item Data"
// @Success 200 {object} cart.Cart
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /cart/items [post]
func (handler *cartHandler) AddItem(ctx *gin.Context) {
	if handler.unavailable(ctx) {
		return
	}

	var request AddCartItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid cart item data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	c, err := handler.cartService.AddItem(ctx, handler.session(ctx), cart.Item{
		ProductID: request.ProductID,
		Quantity:  request.Quantity,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// UpdateItem handles the PUT request to change a cart line quantity
// @Summary Update the quantity of a cart line
// @Description Set the quantity for a product in the cart. Zero removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param requestBody body UpdateCartItemRequest true "Quantity Data"
// @Success 200 {object} cart.Cart
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /cart/items/{productID} [put]
func (handler *cartHandler) UpdateItem(ctx *gin.Context) {
	if handler.unavailable(ctx) {
		return
	}

	productID, ok := pathID(ctx, "productID")
	if !ok {
		return
	}

	var request UpdateCartItemRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid cart item data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	c, err := handler.cartService.UpdateItemQuantity(ctx, handler.session(ctx), productID, request.Quantity)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// RemoveItem handles the DELETE request to remove a cart line
// @Summary Remove a product from the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} cart.Cart
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /cart/items/{productID} [delete]
func (handler *cartHandler) RemoveItem(ctx *gin.Context) {
	if handler.unavailable(ctx) {
		return
	}

	productID, ok := pathID(ctx, "productID")
	if !ok {
		return
	}

	c, err := handler.cartService.RemoveItem(ctx, handler.session(ctx), productID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// Clear handles the DELETE request to empty the cart
// @Summary Empty the cart for the current session
// @Tags Cart
// @Accept json
// @Produce json
// @Success 200 {object} cart.Cart
// @Failure 503 {object} ErrorResponse
// @Router /cart [delete]
func (handler *cartHandler) Clear(ctx *gin.Context) {
	if handler.unavailable(ctx) {
		return
	}

	c, err := handler.cartService.Clear(ctx, handler.session(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c)
}

// Merge handles the POST request to merge a guest cart into the session cart
// @Summary Merge a guest cart into the current session cart
// @Description Fold the posted cart into the session cart, summing quantities per product.
// @Tags Cart
// @Accept json
// @Produce json
// @Param requestBody body cart.Cart true "Guest Cart"
// @Success 200 {object} cart.Cart
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /cart/merge [post]
func (handler *cartHandler) Merge(ctx *gin.Context) {
	if handler.unavailable(ctx) {
		return
	}

	var guest cart.Cart
	if err := ctx.ShouldBindJSON(&guest); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid cart data: %v", err.Error()),
		})
		return
	}

	for i := range guest.Items {
		if err := guest.Items[i].Validate(); err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
			return
		}
	}

	c, err := handler.cartService.Merge(ctx, handler.session(ctx), &guest)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c)
}
