// controllers/gallery_test.go
package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupGalleryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := setupTestDB(t)
	r := newTestRouter()
	NewGalleryResource(db, &fakeStore{}).Register(r.Group("/api/gallery"), passGuard)
	return r
}

func TestGalleryCreateRequiresImage(t *testing.T) {
	r := setupGalleryRouter(t)

	recorder := doRequest(t, r, http.MethodPost, "/api/gallery", gin.H{
		"title": "Degradê",
	})
	expectStatus(t, recorder, http.StatusBadRequest)
}

func TestGalleryFeaturedToggle(t *testing.T) {
	r := setupGalleryRouter(t)

	recorder := doRequest(t, r, http.MethodPost, "/api/gallery", gin.H{
		"title":    "Degradê",
		"imageUrl": "https://files.example.com/degrade.png",
	})
	expectStatus(t, recorder, http.StatusCreated)

	created := decodeObject(t, recorder)
	if created["featured"] != false {
		t.Errorf("featured = %v, want default false", created["featured"])
	}
	id := created["id"].(string)

	recorder = doRequest(t, r, http.MethodPut, "/api/gallery/"+id, gin.H{"featured": true})
	expectStatus(t, recorder, http.StatusOK)

	if updated := decodeObject(t, recorder); updated["featured"] != true {
		t.Errorf("featured = %v, want true", updated["featured"])
	}
}
