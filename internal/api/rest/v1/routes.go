package v1

import (
	"github.com/openmerch/commerce-api/internal/domain/billing"
	"github.com/openmerch/commerce-api/internal/domain/cart"
	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/domain/reviews"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Services bundles everything the route table needs. CartService may be nil
// when Redis is not configured; the cart endpoints then answer 503.
type Services struct {
	CategoryService    catalog.CategoryService
	ProductService     catalog.ProductService
	ClientService      customers.ClientService
	AddressService     customers.AddressService
	OrderService       orders.OrderService
	OrderDetailService orders.OrderDetailService
	BillService        billing.BillService
	ReviewService      reviews.ReviewService
	CartService        cart.Service
}

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services Services, db *gorm.DB, redisClient *redis.Client) {
	v1 := r.Group(BasePath)

	healthHandler := NewHealthHandler(db, redisClient)
	v1.GET("/health", healthHandler.Check)

	categoryHandler := NewCategoryHandler(services.CategoryService)
	v1.GET("/categories", categoryHandler.List)
	v1.GET("/categories/:id", categoryHandler.GetByID)
	v1.POST("/categories", categoryHandler.Create)
	v1.PUT("/categories/:id", categoryHandler.UpdateByID)
	v1.DELETE("/categories/:id", categoryHandler.DeleteByID)

	productHandler := NewProductHandler(services.ProductService)
	v1.GET("/products", productHandler.List)
	v1.GET("/products/:id", productHandler.GetByID)
	v1.POST("/products", productHandler.Create)
	v1.PUT("/products/:id", productHandler.UpdateByID)
	v1.DELETE("/products/:id", productHandler.DeleteByID)

	clientHandler := NewClientHandler(services.ClientService)
	v1.GET("/clients", clientHandler.List)
	v1.GET("/clients/:id", clientHandler.GetByID)
	v1.POST("/clients", clientHandler.Create)
	v1.PUT("/clients/:id", clientHandler.UpdateByID)
	v1.DELETE("/clients/:id", clientHandler.DeleteByID)

	addressHandler := NewAddressHandler(services.AddressService)
	v1.GET("/addresses", addressHandler.List)
	v1.GET("/addresses/:id", addressHandler.GetByID)
	v1.POST("/addresses", addressHandler.Create)
	v1.PUT("/addresses/:id", addressHandler.UpdateByID)
	v1.DELETE("/addresses/:id", addressHandler.DeleteByID)

	orderHandler := NewOrderHandler(services.OrderService)
	v1.GET("/orders", orderHandler.List)
	v1.GET("/orders/:id", orderHandler.GetByID)
	v1.POST("/orders", orderHandler.Create)
	v1.PUT("/orders/:id", orderHandler.UpdateByID)
	v1.DELETE("/orders/:id", orderHandler.DeleteByID)

	orderDetailHandler := NewOrderDetailHandler(services.OrderDetailService)
	v1.GET("/order-details", orderDetailHandler.List)
	v1.GET("/order-details/:id", orderDetailHandler.GetByID)
	v1.POST("/order-details", orderDetailHandler.Create)
	v1.PUT("/order-details/:id", orderDetailHandler.UpdateByID)
	v1.DELETE("/order-details/:id", orderDetailHandler.DeleteByID)

	billHandler := NewBillHandler(services.BillService)
	v1.GET("/bills", billHandler.List)
	v1.GET("/bills/:id", billHandler.GetByID)
	v1.POST("/bills", billHandler.Create)
	v1.PUT("/bills/:id", billHandler.UpdateByID)
	v1.DELETE("/bills/:id", billHandler.DeleteByID)

	reviewHandler := NewReviewHandler(services.ReviewService)
	v1.GET("/reviews", reviewHandler.List)
	v1.GET("/reviews/:id", reviewHandler.GetByID)
	v1.POST("/reviews", reviewHandler.Create)
	v1.PUT("/reviews/:id", reviewHandler.UpdateByID)
	v1.DELETE("/reviews/:id", reviewHandler.DeleteByID)

	cartHandler := NewCartHandler(services.CartService)
	v1.GET("/cart", cartHandler.Get)
	v1.DELETE("/cart", cartHandler.Clear)
	v1.POST("/cart/items", cartHandler.AddItem)
	v1.PUT("/cart/items/:productID", cartHandler.UpdateItem)
	v1.DELETE("/cart/items/:productID", cartHandler.RemoveItem)
	v1.POST("/cart/merge", cartHandler.Merge)
}
