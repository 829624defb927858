package models

import (
	"time"

	"github.com/openmerch/commerce-api/internal/domain/orders"
)

// OrderModel is the GORM database model for orders
type OrderModel struct {
	ID             uint      `gorm:"primaryKey"`
	Date           time.Time `gorm:"not null"`
	Total          float64   `gorm:"not null"`
	DeliveryMethod string    `gorm:"type:varchar(20);not null"`
	Status         string    `gorm:"type:varchar(20);not null;index"`
	ClientID       uint      `gorm:"not null;index"`
	BillID         *uint     `gorm:"index"`
	Client         *ClientModel `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *orders.Order {
	return &orders.Order{
		ID:             m.ID,
		Date:           m.Date,
		Total:          m.Total,
		DeliveryMethod: m.DeliveryMethod,
		Status:         m.Status,
		ClientID:       m.ClientID,
		BillID:         m.BillID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderModel) FromDomain(o *orders.Order) {
	m.ID = o.ID
	m.Date = o.Date
	m.Total = o.Total
	m.DeliveryMethod = o.DeliveryMethod
	m.Status = o.Status
	m.ClientID = o.ClientID
	m.BillID = o.BillID
}

// OrderDetailModel is the GORM database model for order details
type OrderDetailModel struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null;index"`
	Quantity  int     `gorm:"not null"`
	Price     float64 `gorm:"not null"`
	Order     *OrderModel   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (OrderDetailModel) TableName() string {
	return "order_details"
}

// ToDomain converts GORM model to domain entity
func (m *OrderDetailModel) ToDomain() *orders.OrderDetail {
	return &orders.OrderDetail{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.Price,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderDetailModel) FromDomain(d *orders.OrderDetail) {
	m.ID = d.ID
	m.OrderID = d.OrderID
	m.ProductID = d.ProductID
	m.Quantity = d.Quantity
	m.Price = d.Price
}
