// controllers/promotion.go
package controllers

import (
	"time"

	"barbearia-backend/models"
	"barbearia-backend/storage"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreatePromotionInput defines the expected JSON structure for creating a promotion
type CreatePromotionInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	ImageURL    *string   `json:"imageUrl"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Discount    *float64  `json:"discount"`
	Active      *bool     `json:"active"`
}

func (in CreatePromotionInput) Model() models.Promotion {
	promotion := models.Promotion{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Active:      in.Active == nil || *in.Active,
	}
	if in.Discount != nil {
		discount := decimal.NewFromFloat(*in.Discount)
		promotion.Discount = &discount
	}
	return promotion
}

// UpdatePromotionInput defines the expected JSON structure for updating a promotion
type UpdatePromotionInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Discount    *float64   `json:"discount"`
	Active      *bool      `json:"active"`
}

func (in UpdatePromotionInput) Apply(p *models.Promotion) {
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = in.ImageURL
	}
	if in.StartDate != nil {
		p.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = *in.EndDate
	}
	if in.Discount != nil {
		discount := decimal.NewFromFloat(*in.Discount)
		p.Discount = &discount
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
}

func NewPromotionResource(db *gorm.DB, files storage.ObjectStore) *Resource[models.Promotion, CreatePromotionInput, UpdatePromotionInput] {
	return &Resource[models.Promotion, CreatePromotionInput, UpdatePromotionInput]{
		DB:   db,
		Name: "promotion",
		Messages: Messages{
			MissingFields: "Todos os campos são obrigatórios.",
			CreateFailed:  "Erro ao criar uma promoção.",
			FetchFailed:   "Erro ao buscar uma promoção.",
			UpdateFailed:  "Erro ao editar uma promoção.",
			DeleteFailed:  "Erro ao excluir uma promoção.",
			NotFound:      "Promoção não encontrada.",
		},
		Files:     files,
		ImageURL:  func(p models.Promotion) *string { return p.ImageURL },
		Serialize: func(p models.Promotion) any { return p.Public() },
	}
}
