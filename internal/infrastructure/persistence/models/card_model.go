package models

import (
	"github.com/MGTheTrain/card-wallet/internal/domain/cards"
)

// CardModel is the GORM database model for cards
type CardModel struct {
	ID      string `gorm:"primaryKey;size:36"`
	Name    string `gorm:"not null"`
	Barcode string `gorm:"not null"`
	Image   string `gorm:"not null;size:255;index"`
}

// TableName specifies the table name for GORM
func (CardModel) TableName() string {
	return "cards"
}

// ToDomain converts GORM model to domain entity
func (m *CardModel) ToDomain() *cards.Card {
	return &cards.Card{
		ID:      m.ID,
		Name:    m.Name,
		Barcode: m.Barcode,
		Image:   m.Image,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CardModel) FromDomain(c *cards.Card) {
	m.ID = c.ID
	m.Name = c.Name
	m.Barcode = c.Barcode
	m.Image = c.Image
}
