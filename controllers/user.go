// controllers/user.go
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

// UserController manages dashboard accounts. It is not an instance of
// the generic resource because passwords need hashing and emails need a
// uniqueness check before the write.
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

type CreateUserInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (ctl *UserController) Create(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Todos os campos são obrigatórios.")
		return
	}

	var existing models.User
	result := ctl.DB.Where("email = ?", input.Email).First(&existing)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "E-mail já cadastrado.")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("Error creating user: %v", result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao criar usuário.")
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password, // hashed in the BeforeCreate hook
	}

	if err := ctl.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao criar usuário.")
		return
	}

	c.JSON(http.StatusCreated, user.Public())
}

func (ctl *UserController) List(c *gin.Context) {
	var users []models.User
	if err := ctl.DB.Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao buscar usuários.")
		return
	}

	out := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, user.Public())
	}
	c.JSON(http.StatusOK, out)
}

func (ctl *UserController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	var user models.User
	if err := ctl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Usuário não encontrado.")
		} else {
			log.Printf("Error editing user %s: %v", id, err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao editar usuário.")
		}
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		var existing models.User
		if err := ctl.DB.Where("email = ?", *input.Email).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "E-mail já cadastrado.")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error editing user %s: %v", id, err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao editar usuário.")
			return
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			log.Printf("Error editing user %s: %v", id, err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao editar usuário.")
			return
		}
		user.Password = hashed
	}

	if err := ctl.DB.Save(&user).Error; err != nil {
		log.Printf("Error editing user %s: %v", id, err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao editar usuário.")
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

func (ctl *UserController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	result := ctl.DB.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("Error deleting user %s: %v", id, result.Error)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao excluir usuário.")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Usuário não encontrado.")
		return
	}

	c.Status(http.StatusNoContent)
}
