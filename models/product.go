package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	Active      bool             `gorm:"not null" json:"active"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       *float64  `json:"price"`
	ImageURL    *string   `json:"imageUrl"`
	Active      bool      `json:"active"`
}

func (p Product) Public() ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Active:      p.Active,
	}
	if p.Price != nil {
		price := p.Price.InexactFloat64()
		resp.Price = &price
	}
	return resp
}
