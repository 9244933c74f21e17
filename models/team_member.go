package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Bio       *string   `json:"bio"`
	ImageURL  string    `gorm:"not null" json:"imageUrl"`
	Instagram *string   `json:"instagram"`
	Facebook  *string   `json:"facebook"`
	Linkedin  *string   `json:"linkedin"`
	Active    bool      `gorm:"not null" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TeamMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio"`
	ImageURL  string    `json:"imageUrl"`
	Instagram *string   `json:"instagram"`
	Facebook  *string   `json:"facebook"`
	Linkedin  *string   `json:"linkedin"`
	Active    bool      `json:"active"`
}

func (t TeamMember) Public() TeamMemberResponse {
	return TeamMemberResponse{
		ID:        t.ID,
		Name:      t.Name,
		Bio:       t.Bio,
		ImageURL:  t.ImageURL,
		Instagram: t.Instagram,
		Facebook:  t.Facebook,
		Linkedin:  t.Linkedin,
		Active:    t.Active,
	}
}
