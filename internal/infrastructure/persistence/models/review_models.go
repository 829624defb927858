package models

import (
	"github.com/openmerch/commerce-api/internal/domain/reviews"
)

// ReviewModel is the GORM database model for reviews
type ReviewModel struct {
	ID        uint    `gorm:"primaryKey"`
	Rating    float64 `gorm:"not null"`
	Comment   *string `gorm:"type:varchar(1000)"`
	ProductID uint    `gorm:"not null;index"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts GORM model to domain entity
func (m *ReviewModel) ToDomain() *reviews.Review {
	return &reviews.Review{
		ID:        m.ID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		ProductID: m.ProductID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReviewModel) FromDomain(r *reviews.Review) {
	m.ID = r.ID
	m.Rating = r.Rating
	m.Comment = r.Comment
	m.ProductID = r.ProductID
}
