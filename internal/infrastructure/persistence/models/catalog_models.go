package models

import (
	"github.com/openmerch/commerce-api/internal/domain/catalog"
)

// CategoryModel is the GORM database model for categories
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts GORM model to domain entity
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		ID:   m.ID,
		Name: m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.ID = c.ID
	m.Name = c.Name
}

// ProductModel is the GORM database model for products
type ProductModel struct {
	ID         uint    `gorm:"primaryKey"`
	Name       string  `gorm:"type:varchar(200);not null"`
	Price      float64 `gorm:"not null"`
	Stock      int     `gorm:"not null;default:0"`
	CategoryID uint    `gorm:"not null;index"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts GORM model to domain entity
func (m *ProductModel) ToDomain() *catalog.Product {
	product := &catalog.Product{
		ID:         m.ID,
		Name:       m.Name,
		Price:      m.Price,
		Stock:      m.Stock,
		CategoryID: m.CategoryID,
	}
	if m.Category != nil {
		product.Category = m.Category.ToDomain()
	}
	return product
}

// FromDomain converts domain entity to GORM model
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.ID = p.ID
	m.Name = p.Name
	m.Price = p.Price
	m.Stock = p.Stock
	m.CategoryID = p.CategoryID
}
