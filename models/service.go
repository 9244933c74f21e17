package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int             `json:"duration"` // in minutes
	ImageURL    *string         `json:"imageUrl"`
	Active      bool            `gorm:"not null" json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ServiceResponse is the wire shape for a service. Price is stored as a
// fixed-point decimal and leaves the API as a plain JSON number.
type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    int       `json:"duration"`
	ImageURL    *string   `json:"imageUrl"`
	Active      bool      `json:"active"`
}

func (s Service) Public() ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price.InexactFloat64(),
		Duration:    s.Duration,
		ImageURL:    s.ImageURL,
		Active:      s.Active,
	}
}
