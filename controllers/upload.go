// controllers/upload.go
package controllers

import (
	"log"
	"net/http"
	"path/filepath"

	"barbearia-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadController talks to the upload provider. Records only ever store
// the resulting public URLs; deletion is addressed by file key.
type UploadController struct {
	Files storage.ObjectStore
}

func NewUploadController(files storage.ObjectStore) *UploadController {
	return &UploadController{Files: files}
}

// Upload handles POST /api/uploads: stores the multipart "file" field and
// returns its public URL together with the key needed to delete it later.
func (ctl *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O arquivo é obrigatório"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error reading upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao enviar o arquivo"})
		return
	}
	defer file.Close()

	key := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := ctl.Files.Upload(c.Request.Context(), key, file, contentType)
	if err != nil {
		log.Printf("Error uploading file %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao enviar o arquivo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "fileKey": key})
}

type DeleteFileInput struct {
	FileKey string `json:"fileKey"`
}

// Delete handles POST /api/uploadthing/delete, the path the dashboard
// client has always called.
func (ctl *UploadController) Delete(c *gin.Context) {
	var input DeleteFileInput
	if err := c.ShouldBindJSON(&input); err != nil || input.FileKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A chave do arquivo é obrigatória"})
		return
	}

	if err := ctl.Files.Delete(c.Request.Context(), input.FileKey); err != nil {
		log.Printf("Error deleting file %s: %v", input.FileKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao deletar o arquivo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
