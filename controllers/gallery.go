// controllers/gallery.go
package controllers

import (
	"barbearia-backend/models"
	"barbearia-backend/storage"

	"gorm.io/gorm"
)

// CreateGalleryImageInput defines the expected JSON structure for creating a gallery image
type CreateGalleryImageInput struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl" binding:"required"`
	Featured    *bool   `json:"featured"`
	Active      *bool   `json:"active"`
}

func (in CreateGalleryImageInput) Model() models.GalleryImage {
	return models.GalleryImage{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured != nil && *in.Featured,
		Active:      in.Active == nil || *in.Active,
	}
}

// UpdateGalleryImageInput defines the expected JSON structure for updating a gallery image
type UpdateGalleryImageInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Featured    *bool   `json:"featured"`
	Active      *bool   `json:"active"`
}

func (in UpdateGalleryImageInput) Apply(g *models.GalleryImage) {
	if in.Title != nil {
		g.Title = *in.Title
	}
	if in.Description != nil {
		g.Description = in.Description
	}
	if in.ImageURL != nil {
		g.ImageURL = *in.ImageURL
	}
	if in.Featured != nil {
		g.Featured = *in.Featured
	}
	if in.Active != nil {
		g.Active = *in.Active
	}
}

func NewGalleryResource(db *gorm.DB, files storage.ObjectStore) *Resource[models.GalleryImage, CreateGalleryImageInput, UpdateGalleryImageInput] {
	return &Resource[models.GalleryImage, CreateGalleryImageInput, UpdateGalleryImageInput]{
		DB:   db,
		Name: "gallery image",
		Messages: Messages{
			MissingFields: "Todos os campos são obrigatórios.",
			CreateFailed:  "Erro ao criar uma galeria.",
			FetchFailed:   "Erro ao buscar uma galeria.",
			UpdateFailed:  "Erro ao editar uma galeria.",
			DeleteFailed:  "Erro ao excluir uma galeria.",
			NotFound:      "Imagem não encontrada.",
		},
		Files:     files,
		ImageURL:  func(g models.GalleryImage) *string { return &g.ImageURL },
		Serialize: func(g models.GalleryImage) any { return g.Public() },
	}
}
