// controllers/resource.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"barbearia-backend/storage"
	"barbearia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgInvalidID   = "ID inválido."
	msgInvalidBody = "Dados inválidos."
)

// creator binds a create payload into a fresh row.
type creator[M any] interface {
	Model() M
}

// patcher applies only the fields present in an update payload. Every
// input field is a pointer, so an absent key leaves the prior value
// untouched and an explicit false/0/"" still overwrites.
type patcher[M any] interface {
	Apply(m *M)
}

// Messages are the localized strings a resource answers errors with.
type Messages struct {
	MissingFields string
	CreateFailed  string
	FetchFailed   string
	UpdateFailed  string
	DeleteFailed  string
	NotFound      string
}

// Resource is the one CRUD controller every content type instantiates.
// The entity-specific parts come in through the input types and hooks.
type Resource[M any, C creator[M], U patcher[M]] struct {
	DB       *gorm.DB
	Name     string // for log lines
	Messages Messages

	// Files plus ImageURL enable stale-image cleanup: when a row is
	// deleted, or its image URL is replaced, the old file is removed
	// from the upload provider by its derived key.
	Files    storage.ObjectStore
	ImageURL func(m M) *string

	// ListScope narrows the list query, e.g. the products showAll flag.
	ListScope func(c *gin.Context, tx *gorm.DB) *gorm.DB
	// Serialize converts a row to its wire shape (decimal → number).
	Serialize func(m M) any
}

// Register wires the uniform route set: public reads, guarded writes.
func (r *Resource[M, C, U]) Register(g *gin.RouterGroup, guard gin.HandlerFunc) {
	g.GET("", r.List)
	g.GET("/:id", r.Get)
	g.POST("", guard, r.Create)
	g.PUT("/:id", guard, r.Update)
	g.DELETE("/:id", guard, r.Delete)
}

func (r *Resource[M, C, U]) Create(c *gin.Context) {
	var input C
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, r.Messages.MissingFields)
		return
	}

	row := input.Model()
	if err := r.DB.Create(&row).Error; err != nil {
		log.Printf("Error creating %s: %v", r.Name, err)
		utils.RespondWithError(c, http.StatusInternalServerError, r.Messages.CreateFailed)
		return
	}

	c.JSON(http.StatusCreated, r.serialize(row))
}

func (r *Resource[M, C, U]) List(c *gin.Context) {
	tx := r.DB
	if r.ListScope != nil {
		tx = r.ListScope(c, tx)
	}

	var rows []M
	if err := tx.Find(&rows).Error; err != nil {
		log.Printf("Error fetching %s list: %v", r.Name, err)
		utils.RespondWithError(c, http.StatusInternalServerError, r.Messages.FetchFailed)
		return
	}

	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.serialize(row))
	}
	c.JSON(http.StatusOK, out)
}

func (r *Resource[M, C, U]) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	var row M
	if err := r.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, r.Messages.NotFound)
		} else {
			log.Printf("Error fetching %s %s: %v", r.Name, id, err)
			utils.RespondWithError(c, http.StatusInternalServerError, r.Messages.FetchFailed)
		}
		return
	}

	c.JSON(http.StatusOK, r.serialize(row))
}

func (r *Resource[M, C, U]) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input U
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	var row M
	if err := r.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, r.Messages.NotFound)
		} else {
			log.Printf("Error fetching %s %s: %v", r.Name, id, err)
			utils.RespondWithError(c, http.StatusInternalServerError, r.Messages.UpdateFailed)
		}
		return
	}

	var previousImage *string
	if r.ImageURL != nil {
		previousImage = r.ImageURL(row)
	}

	input.Apply(&row)

	if err := r.DB.Save(&row).Error; err != nil {
		log.Printf("Error editing %s %s: %v", r.Name, id, err)
		utils.RespondWithError(c, http.StatusInternalServerError, r.Messages.UpdateFailed)
		return
	}

	if r.ImageURL != nil {
		r.cleanupReplacedImage(c, previousImage, r.ImageURL(row))
	}

	// Re-fetch so the response carries exactly what was persisted.
	if err := r.DB.First(&row, "id = ?", id).Error; err != nil {
		log.Printf("Error fetching %s %s: %v", r.Name, id, err)
		utils.RespondWithError(c, http.StatusInternalServerError, r.Messages.UpdateFailed)
		return
	}

	c.JSON(http.StatusOK, r.serialize(row))
}

func (r *Resource[M, C, U]) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	var row M
	if err := r.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, r.Messages.NotFound)
		} else {
			log.Printf("Error fetching %s %s: %v", r.Name, id, err)
			utils.RespondWithError(c, http.StatusInternalServerError, r.Messages.DeleteFailed)
		}
		return
	}

	if err := r.DB.Delete(&row).Error; err != nil {
		log.Printf("Error deleting %s %s: %v", r.Name, id, err)
		utils.RespondWithError(c, http.StatusInternalServerError, r.Messages.DeleteFailed)
		return
	}

	if r.ImageURL != nil {
		r.deleteImage(c, r.ImageURL(row))
	}

	c.Status(http.StatusNoContent)
}

func (r *Resource[M, C, U]) serialize(row M) any {
	if r.Serialize == nil {
		return row
	}
	return r.Serialize(row)
}

func (r *Resource[M, C, U]) cleanupReplacedImage(c *gin.Context, previous, current *string) {
	if previous == nil || *previous == "" {
		return
	}
	if current != nil && *current == *previous {
		return
	}
	r.deleteImage(c, previous)
}

// deleteImage is best-effort: a leaked file never fails the request.
func (r *Resource[M, C, U]) deleteImage(c *gin.Context, url *string) {
	if r.Files == nil || url == nil || *url == "" {
		return
	}
	key := utils.FileKeyFromURL(*url)
	if err := r.Files.Delete(c.Request.Context(), key); err != nil {
		log.Printf("Failed to delete file %s: %v", key, err)
	}
}
