// controllers/section.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"barbearia-backend/models"
	"barbearia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionController manages the visibility flags of the public page
// sections. Rows are never created through a form: a fixed set is
// seeded and only the active flag is ever written afterwards.
type SectionController struct {
	DB *gorm.DB
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db}
}

// EnsureSeeded upserts the five fixed sections without overwriting an
// already-toggled active value. It runs at boot and on POST /api/sections.
func (ctl *SectionController) EnsureSeeded() error {
	for _, name := range models.SectionNames {
		section := models.SectionVisibility{Name: name, Active: true}
		if err := ctl.DB.Where("name = ?", name).FirstOrCreate(&section).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed handles POST /api/sections and returns the full seeded list.
func (ctl *SectionController) Seed(c *gin.Context) {
	if err := ctl.EnsureSeeded(); err != nil {
		log.Printf("Error creating sections: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao criar as seções.")
		return
	}
	ctl.respondWithList(c)
}

// List handles GET /api/sections, ordered by name. The site layout
// fetches this once per page load and threads the map down.
func (ctl *SectionController) List(c *gin.Context) {
	ctl.respondWithList(c)
}

func (ctl *SectionController) respondWithList(c *gin.Context) {
	var sections []models.SectionVisibility
	if err := ctl.DB.Order("name asc").Find(&sections).Error; err != nil {
		log.Printf("Error fetching sections: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao buscar as seções.")
		return
	}

	out := make([]models.SectionResponse, 0, len(sections))
	for _, section := range sections {
		out = append(out, section.Public())
	}
	c.JSON(http.StatusOK, out)
}

type UpdateSectionInput struct {
	Active *bool `json:"active"`
}

// Update handles PUT /api/sections/:id. Only the active flag is writable.
func (ctl *SectionController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input UpdateSectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	var section models.SectionVisibility
	if err := ctl.DB.First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Seção não encontrada.")
		} else {
			log.Printf("Error updating section %s: %v", id, err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao editar uma seção.")
		}
		return
	}

	if input.Active != nil {
		if err := ctl.DB.Model(&section).Update("active", *input.Active).Error; err != nil {
			log.Printf("Error updating section %s: %v", id, err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao editar uma seção.")
			return
		}
	}

	if err := ctl.DB.First(&section, "id = ?", id).Error; err != nil {
		log.Printf("Error updating section %s: %v", id, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao editar uma seção.")
		return
	}

	c.JSON(http.StatusOK, section.Public())
}
