package models

import (
	"time"

	"github.com/openmerch/commerce-api/internal/domain/billing"
)

// BillModel is the GORM database model for bills
type BillModel struct {
	ID          uint      `gorm:"primaryKey"`
	BillNumber  string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Discount    *float64
	Date        time.Time `gorm:"not null"`
	Total       float64   `gorm:"not null"`
	PaymentType string    `gorm:"type:varchar(20);not null"`
	ClientID    uint      `gorm:"not null;index"`
	Client      *ClientModel `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts GORM model to domain entity
func (m *BillModel) ToDomain() *billing.Bill {
	return &billing.Bill{
		ID:          m.ID,
		BillNumber:  m.BillNumber,
		Discount:    m.Discount,
		Date:        m.Date,
		Total:       m.Total,
		PaymentType: m.PaymentType,
		ClientID:    m.ClientID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BillModel) FromDomain(b *billing.Bill) {
	m.ID = b.ID
	m.BillNumber = b.BillNumber
	m.Discount = b.Discount
	m.Date = b.Date
	m.Total = b.Total
	m.PaymentType = b.PaymentType
	m.ClientID = b.ClientID
}
