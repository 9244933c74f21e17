// controllers/product.go
package controllers

import (
	"barbearia-backend/models"
	"barbearia-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	Active      *bool    `json:"active"`
}

func (in CreateProductInput) Model() models.Product {
	product := models.Product{
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Active:      in.Active == nil || *in.Active,
	}
	if in.Price != nil {
		price := decimal.NewFromFloat(*in.Price)
		product.Price = &price
	}
	return product
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	Active      *bool    `json:"active"`
}

func (in UpdateProductInput) Apply(p *models.Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		price := decimal.NewFromFloat(*in.Price)
		p.Price = &price
	}
	if in.ImageURL != nil {
		p.ImageURL = in.ImageURL
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
}

func NewProductResource(db *gorm.DB, files storage.ObjectStore) *Resource[models.Product, CreateProductInput, UpdateProductInput] {
	return &Resource[models.Product, CreateProductInput, UpdateProductInput]{
		DB:   db,
		Name: "product",
		Messages: Messages{
			MissingFields: "Todos os campos são obrigatórios.",
			CreateFailed:  "Erro ao criar um produto.",
			FetchFailed:   "Erro ao buscar um produto.",
			UpdateFailed:  "Erro ao editar um produto.",
			DeleteFailed:  "Erro ao excluir um produto.",
			NotFound:      "Produto não encontrado.",
		},
		Files:    files,
		ImageURL: func(p models.Product) *string { return p.ImageURL },
		// The shop page only lists active products; the dashboard asks
		// for everything with ?showAll=true.
		ListScope: func(c *gin.Context, tx *gorm.DB) *gorm.DB {
			if c.Query("showAll") == "true" {
				return tx
			}
			return tx.Where("active = ?", true)
		},
		Serialize: func(p models.Product) any { return p.Public() },
	}
}
