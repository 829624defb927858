package models

import (
	"github.com/openmerch/commerce-api/internal/domain/customers"
)

// ClientModel is the GORM database model for clients
type ClientModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100)"`
	Lastname  string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(255);index"`
	Telephone string `gorm:"type:varchar(20)"`
	Addresses []AddressModel `gorm:"foreignKey:ClientID"`
}

// TableName specifies the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts GORM model to domain entity
func (m *ClientModel) ToDomain() *customers.Client {
	client := &customers.Client{
		ID:        m.ID,
		Name:      m.Name,
		Lastname:  m.Lastname,
		Email:     m.Email,
		Telephone: m.Telephone,
	}
	for i := range m.Addresses {
		client.Addresses = append(client.Addresses, *m.Addresses[i].ToDomain())
	}
	return client
}

// FromDomain converts domain entity to GORM model
func (m *ClientModel) FromDomain(c *customers.Client) {
	m.ID = c.ID
	m.Name = c.Name
	m.Lastname = c.Lastname
	m.Email = c.Email
	m.Telephone = c.Telephone
}

// AddressModel is the GORM database model for addresses
type AddressModel struct {
	ID       uint   `gorm:"primaryKey"`
	Street   string `gorm:"type:varchar(200)"`
	Number   string `gorm:"type:varchar(20)"`
	City     string `gorm:"type:varchar(100)"`
	ClientID uint   `gorm:"not null;index"`
	Client   *ClientModel `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts GORM model to domain entity
func (m *AddressModel) ToDomain() *customers.Address {
	return &customers.Address{
		ID:       m.ID,
		Street:   m.Street,
		Number:   m.Number,
		City:     m.City,
		ClientID: m.ClientID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AddressModel) FromDomain(a *customers.Address) {
	m.ID = a.ID
	m.Street = a.Street
	m.Number = a.Number
	m.City = a.City
	m.ClientID = a.ClientID
}
