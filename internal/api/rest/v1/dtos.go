package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/openmerch/commerce-api/internal/domain/billing"
	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/domain/reviews"

	"github.com/go-playground/validator/v10"
)

// runValidation applies the shared validator to a request DTO.
func runValidation(request interface{}) error {
	validate := validator.New()

	err := validate.Struct(request)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ErrorResponse is the generic error payload
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the generic informational payload
type InfoResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports the API and its backing services
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// CategoryRequest is the payload for creating or updating a category
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// Validate for validating CategoryRequest
func (r *CategoryRequest) Validate() error {
	return runValidation(r)
}

// ToDomain converts the request into a domain category
func (r *CategoryRequest) ToDomain() *catalog.Category {
	return &catalog.Category{Name: r.Name}
}

// CategoryResponse is the API shape of a category
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newCategoryResponse(category *catalog.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

// ProductRequest is the payload for creating or updating a product
type ProductRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=200"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Stock      int     `json:"stock" validate:"min=0"`
	CategoryID uint    `json:"category_id" validate:"required"`
}

// Validate for validating ProductRequest
func (r *ProductRequest) Validate() error {
	return runValidation(r)
}

// ToDomain converts the request into a domain product
func (r *ProductRequest) ToDomain() *catalog.Product {
	return &catalog.Product{
		Name:       r.Name,
		Price:      r.Price,
		Stock:      r.Stock,
		CategoryID: r.CategoryID,
	}
}

// ProductResponse is the API shape of a product
type ProductResponse struct {
	ID         uint              `json:"id"`
	Name       string            `json:"name"`
	Price      float64           `json:"price"`
	Stock      int               `json:"stock"`
	CategoryID uint              `json:"category_id"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

func newProductResponse(product *catalog.Product) ProductResponse {
	response := ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Stock:      product.Stock,
		CategoryID: product.CategoryID,
	}
	if product.Category != nil {
		category := newCategoryResponse(product.Category)
		response.Category = &category
	}
	return response
}

// ClientRequest is the payload for creating or updating a client
type ClientRequest struct {
	Name      string `json:"name" validate:"omitempty,min=1,max=100"`
	Lastname  string `json:"lastname" validate:"omitempty,min=1,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telephone string `json:"telephone" validate:"omitempty,min=7,max=20"`
}

// Validate for validating ClientRequest
func (r *ClientRequest) Validate() error {
	return runValidation(r)
}

// ToDomain converts the request into a domain client
func (r *ClientRequest) ToDomain() *customers.Client {
	return &customers.Client{
		Name:      r.Name,
		Lastname:  r.Lastname,
		Email:     r.Email,
		Telephone: r.Telephone,
	}
}

// AddressResponse is the API shape of an address
type AddressResponse struct {
	ID       uint   `json:"id"`
	Street   string `json:"street"`
	Number   string `json:"number"`
	City     string `json:"city"`
	ClientID uint   `json:"client_id"`
}

func newAddressResponse(address *customers.Address) AddressResponse {
	return AddressResponse{
		ID:       address.ID,
		Street:   address.Street,
		Number:   address.Number,
		City:     address.City,
		ClientID: address.ClientID,
	}
}

// ClientResponse is the API shape of a client
type ClientResponse struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	Lastname  string            `json:"lastname"`
	Email     string            `json:"email"`
	Telephone string            `json:"telephone"`
	Addresses []AddressResponse `json:"addresses"`
}

func newClientResponse(client *customers.Client) ClientResponse {
	response := ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Lastname:  client.Lastname,
		Email:     client.Email,
		Telephone: client.Telephone,
		Addresses: []AddressResponse{},
	}
	for i := range client.Addresses {
		response.Addresses = append(response.Addresses, newAddressResponse(&client.Addresses[i]))
	}
	return response
}

// AddressRequest is the payload for creating or updating an address
type AddressRequest struct {
	Street   string `json:"street" validate:"omitempty,min=1,max=200"`
	Number   string `json:"number" validate:"omitempty,max=20"`
	City     string `json:"city" validate:"omitempty,min=1,max=100"`
	ClientID uint   `json:"client_id" validate:"required"`
}

// Validate for validating AddressRequest
func (r *AddressRequest) Validate() error {
	return runValidation(r)
}

// ToDomain converts the request into a domain address
func (r *AddressRequest) ToDomain() *customers.Address {
	return &customers.Address{
		Street:   r.Street,
		Number:   r.Number,
		City:     r.City,
		ClientID: r.ClientID,
	}
}

// OrderRequest is the payload for creating or updating an order. Date and
// Status default server-side when omitted.
type OrderRequest struct {
	Date           *time.Time `json:"date"`
	Total          float64    `json:"total" validate:"min=0"`
	DeliveryMethod string     `json:"delivery_method" validate:"required,oneof=standard express pickup"`
	Status         string     `json:"status" validate:"omitempty,oneof=pending paid shipped delivered cancelled"`
	ClientID       uint       `json:"client_id" validate:"required"`
	BillID         *uint      `json:"bill_id"`
}

// Validate for validating OrderRequest
func (r *OrderRequest) Validate() error {
	return runValidation(r)
}

// ToDomain converts the request into a domain order with defaults applied
func (r *OrderRequest) ToDomain() *orders.Order {
	order := orders.NewOrder(r.ClientID, r.Total, r.DeliveryMethod)
	if r.Date != nil {
		order.Date = *r.Date
	}
	if r.Status != "" {
		order.Status = r.Status
	}
	order.BillID = r.BillID
	return order
}

// OrderResponse is the API shape of an order
type OrderResponse struct {
	ID             uint      `json:"id"`
	Date           time.Time `json:"date"`
	Total          float64   `json:"total"`
	DeliveryMethod string    `json:"delivery_method"`
	Status         string    `json:"status"`
	ClientID       uint      `json:"client_id"`
	BillID         *uint     `json:"bill_id"`
}

func newOrderResponse(order *orders.Order) OrderResponse {
	return OrderResponse{
		ID:             order.ID,
		Date:           order.Date,
		Total:          order.Total,
		DeliveryMethod: order.DeliveryMethod,
		Status:         order.Status,
		ClientID:       order.ClientID,
		BillID:         order.BillID,
	}
}

// OrderDetailRequest is the payload for creating or updating an order detail.
// A zero price is filled in from the catalog.
type OrderDetailRequest struct {
	OrderID   uint    `json:"order_id" validate:"required"`
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"omitempty,gt=0"`
}

// Validate for validating OrderDetailRequest
func (r *OrderDetailRequest) Validate() error {
	return runValidation(r)
}

// ToDomain converts the request into a domain order detail
func (r *OrderDetailRequest) ToDomain() *orders.OrderDetail {
	return &orders.OrderDetail{
		OrderID:   r.OrderID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Price:     r.Price,
	}
}

// OrderDetailResponse is the API shape of an order detail
type OrderDetailResponse struct {
	ID        uint    `json:"id"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

func newOrderDetailResponse(detail *orders.OrderDetail) OrderDetailResponse {
	return OrderDetailResponse{
		ID:        detail.ID,
		OrderID:   detail.OrderID,
		ProductID: detail.ProductID,
		Quantity:  detail.Quantity,
		Price:     detail.Price,
	}
}

// BillRequest is the payload for creating or updating a bill. Date defaults
// server-side when omitted.
type BillRequest struct {
	BillNumber  string     `json:"bill_number" validate:"required,min=1,max=50"`
	Discount    *float64   `json:"discount" validate:"omitempty,min=0"`
	Date        *time.Time `json:"date"`
	Total       float64    `json:"total" validate:"min=0"`
	PaymentType string     `json:"payment_type" validate:"required,oneof=cash credit_card debit_card transfer"`
	ClientID    uint       `json:"client_id" validate:"required"`
}

// Validate for validating BillRequest
func (r *BillRequest) Validate() error {
	return runValidation(r)
}

// ToDomain converts the request into a domain bill with defaults applied
func (r *BillRequest) ToDomain() *billing.Bill {
	bill := &billing.Bill{
		BillNumber:  r.BillNumber,
		Discount:    r.Discount,
		Date:        time.Now().UTC(),
		Total:       r.Total,
		PaymentType: r.PaymentType,
		ClientID:    r.ClientID,
	}
	if r.Date != nil {
		bill.Date = *r.Date
	}
	return bill
}

// BillResponse is the API shape of a bill
type BillResponse struct {
	ID          uint      `json:"id"`
	BillNumber  string    `json:"bill_number"`
	Discount    *float64  `json:"discount"`
	Date        time.Time `json:"date"`
	Total       float64   `json:"total"`
	PaymentType string    `json:"payment_type"`
	ClientID    uint      `json:"client_id"`
}

func newBillResponse(bill *billing.Bill) BillResponse {
	return BillResponse{
		ID:          bill.ID,
		BillNumber:  bill.BillNumber,
		Discount:    bill.Discount,
		Date:        bill.Date,
		Total:       bill.Total,
		PaymentType: bill.PaymentType,
		ClientID:    bill.ClientID,
	}
}

// ReviewRequest is the payload for creating or updating a review
type ReviewRequest struct {
	Rating    float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment" validate:"omitempty,min=10,max=1000"`
	ProductID uint    `json:"product_id" validate:"required"`
}

// Validate for validating ReviewRequest
func (r *ReviewRequest) Validate() error {
	return runValidation(r)
}

// ToDomain converts the request into a domain review
func (r *ReviewRequest) ToDomain() *reviews.Review {
	return &reviews.Review{
		Rating:    r.Rating,
		Comment:   r.Comment,
		ProductID: r.ProductID,
	}
}

// ReviewResponse is the API shape of a review
type ReviewResponse struct {
	ID        uint    `json:"id"`
	Rating    float64 `json:"rating"`
	Comment   *string `json:"comment"`
	ProductID uint    `json:"product_id"`
}

func newReviewResponse(review *reviews.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		ProductID: review.ProductID,
	}
}

// AddCartItemRequest is the payload for adding a product to the cart
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// Validate for validating AddCartItemRequest
func (r *AddCartItemRequest) Validate() error {
	return runValidation(r)
}

// UpdateCartItemRequest is the payload for changing a cart line quantity.
// Zero removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// Validate for validating UpdateCartItemRequest
func (r *UpdateCartItemRequest) Validate() error {
	return runValidation(r)
}
