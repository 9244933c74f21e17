package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionVisibility controls whether a marketing section of the public
// site is rendered. Rows are seeded once and only ever toggled.
type SectionVisibility struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *SectionVisibility) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SectionNames are the five toggleable sections of the public page.
var SectionNames = []string{"gallery", "products", "promotions", "services", "team"}

type SectionResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}

func (s SectionVisibility) Public() SectionResponse {
	return SectionResponse{ID: s.ID, Name: s.Name, Active: s.Active}
}
