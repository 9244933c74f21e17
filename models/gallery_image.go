package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `gorm:"not null" json:"imageUrl"`
	Featured    bool      `gorm:"not null" json:"featured"`
	Active      bool      `gorm:"not null" json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (g *GalleryImage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type GalleryImageResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Featured    bool      `json:"featured"`
	Active      bool      `json:"active"`
}

func (g GalleryImage) Public() GalleryImageResponse {
	return GalleryImageResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		ImageURL:    g.ImageURL,
		Featured:    g.Featured,
		Active:      g.Active,
	}
}
