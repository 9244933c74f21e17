// controllers/service.go
package controllers

import (
	"barbearia-backend/models"
	"barbearia-backend/storage"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Duration    int     `json:"duration" binding:"required"` // in minutes
	ImageURL    *string `json:"imageUrl"`
	Active      *bool   `json:"active"`
}

func (in CreateServiceInput) Model() models.Service {
	return models.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       decimal.NewFromFloat(in.Price),
		Duration:    in.Duration,
		ImageURL:    in.ImageURL,
		Active:      in.Active == nil || *in.Active,
	}
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	ImageURL    *string  `json:"imageUrl"`
	Active      *bool    `json:"active"`
}

func (in UpdateServiceInput) Apply(s *models.Service) {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Price != nil {
		s.Price = decimal.NewFromFloat(*in.Price)
	}
	if in.Duration != nil {
		s.Duration = *in.Duration
	}
	if in.ImageURL != nil {
		s.ImageURL = in.ImageURL
	}
	if in.Active != nil {
		s.Active = *in.Active
	}
}

func NewServiceResource(db *gorm.DB, files storage.ObjectStore) *Resource[models.Service, CreateServiceInput, UpdateServiceInput] {
	return &Resource[models.Service, CreateServiceInput, UpdateServiceInput]{
		DB:   db,
		Name: "service",
		Messages: Messages{
			MissingFields: "Todos os campos são obrigatórios.",
			CreateFailed:  "Erro ao criar um serviço.",
			FetchFailed:   "Erro ao buscar um serviço.",
			UpdateFailed:  "Erro ao editar um serviço.",
			DeleteFailed:  "Erro ao excluir um serviço.",
			NotFound:      "Serviço não encontrado.",
		},
		Files:     files,
		ImageURL:  func(s models.Service) *string { return s.ImageURL },
		Serialize: func(s models.Service) any { return s.Public() },
	}
}
