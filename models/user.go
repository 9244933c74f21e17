package models

import (
	"time"

	"barbearia-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a dashboard account. There are no roles: every user is an admin.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Hash the password before persisting. Updates go through the controller,
// which rehashes explicitly.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (u User) Public() UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
