// controllers/user_test.go
package controllers

import (
	"net/http"
	"testing"

	"barbearia-backend/models"
	"barbearia-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupUserRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	r := newTestRouter()
	ctl := NewUserController(db)
	users := r.Group("/api/auth/users")
	users.POST("", ctl.Create)
	users.GET("", ctl.List)
	users.PUT("/:id", ctl.Update)
	users.DELETE("/:id", ctl.Delete)
	return r, db
}

func TestUserCreateHashesPassword(t *testing.T) {
	r, db := setupUserRouter(t)

	recorder := doRequest(t, r, http.MethodPost, "/api/auth/users", gin.H{
		"name":     "Admin",
		"email":    "admin@barbearia.com",
		"password": "senha-secreta",
	})
	expectStatus(t, recorder, http.StatusCreated)

	created := decodeObject(t, recorder)
	if _, leaked := created["password"]; leaked {
		t.Fatal("password leaked in create response")
	}

	var user models.User
	if err := db.Where("email = ?", "admin@barbearia.com").First(&user).Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Password == "senha-secreta" {
		t.Fatal("password stored in plaintext")
	}
	if !utils.CheckPasswordHash("senha-secreta", user.Password) {
		t.Fatal("stored hash does not match the password")
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	r, _ := setupUserRouter(t)

	payload := gin.H{
		"name":     "Admin",
		"email":    "admin@barbearia.com",
		"password": "senha-secreta",
	}
	expectStatus(t, doRequest(t, r, http.MethodPost, "/api/auth/users", payload), http.StatusCreated)
	expectStatus(t, doRequest(t, r, http.MethodPost, "/api/auth/users", payload), http.StatusConflict)
}

func TestUserListOmitsPassword(t *testing.T) {
	r, _ := setupUserRouter(t)

	expectStatus(t, doRequest(t, r, http.MethodPost, "/api/auth/users", gin.H{
		"name":     "Admin",
		"email":    "admin@barbearia.com",
		"password": "senha-secreta",
	}), http.StatusCreated)

	recorder := doRequest(t, r, http.MethodGet, "/api/auth/users", nil)
	expectStatus(t, recorder, http.StatusOK)

	users := decodeList(t, recorder)
	if len(users) != 1 {
		t.Fatalf("users = %d, want 1", len(users))
	}
	if _, leaked := users[0]["password"]; leaked {
		t.Fatal("password leaked in list response")
	}
	if users[0]["email"] != "admin@barbearia.com" {
		t.Errorf("email = %v", users[0]["email"])
	}
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	r, db := setupUserRouter(t)

	recorder := doRequest(t, r, http.MethodPost, "/api/auth/users", gin.H{
		"name":     "Admin",
		"email":    "admin@barbearia.com",
		"password": "senha-antiga",
	})
	expectStatus(t, recorder, http.StatusCreated)
	id := decodeObject(t, recorder)["id"].(string)

	recorder = doRequest(t, r, http.MethodPut, "/api/auth/users/"+id, gin.H{
		"password": "senha-nova",
	})
	expectStatus(t, recorder, http.StatusOK)

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		t.Fatalf("user not found: %v", err)
	}
	if !utils.CheckPasswordHash("senha-nova", user.Password) {
		t.Fatal("password was not rehashed on update")
	}
	if user.Name != "Admin" {
		t.Errorf("name = %v, want unchanged Admin", user.Name)
	}
}

func TestUserDelete(t *testing.T) {
	r, db := setupUserRouter(t)

	recorder := doRequest(t, r, http.MethodPost, "/api/auth/users", gin.H{
		"name":     "Admin",
		"email":    "admin@barbearia.com",
		"password": "senha-secreta",
	})
	expectStatus(t, recorder, http.StatusCreated)
	id := decodeObject(t, recorder)["id"].(string)

	recorder = doRequest(t, r, http.MethodDelete, "/api/auth/users/"+id, nil)
	expectStatus(t, recorder, http.StatusNoContent)

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("users after delete = %d, want 0", count)
	}

	recorder = doRequest(t, r, http.MethodDelete, "/api/auth/users/"+id, nil)
	expectStatus(t, recorder, http.StatusNotFound)
}
