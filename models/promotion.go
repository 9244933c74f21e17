package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Promotion struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string           `gorm:"not null" json:"title"`
	Description string           `gorm:"not null" json:"description"`
	ImageURL    *string          `json:"imageUrl"`
	StartDate   time.Time        `gorm:"not null" json:"startDate"`
	EndDate     time.Time        `gorm:"not null" json:"endDate"`
	Discount    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"` // percent
	Active      bool             `gorm:"not null" json:"active"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type PromotionResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Discount    *float64  `json:"discount"`
	Active      bool      `json:"active"`
}

func (p Promotion) Public() PromotionResponse {
	resp := PromotionResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Active:      p.Active,
	}
	if p.Discount != nil {
		discount := p.Discount.InexactFloat64()
		resp.Discount = &discount
	}
	return resp
}
