// controllers/auth.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"barbearia-backend/models"
	"barbearia-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Todos os campos são obrigatórios.")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	var user models.User
	if err := ctl.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Credenciais inválidas.")
		} else {
			log.Printf("Error logging in: %v", err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao efetuar login.")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Credenciais inválidas.")
		return
	}

	token, err := utils.GenerateToken(user.ID.String())
	if err != nil {
		log.Printf("Error logging in: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao efetuar login.")
		return
	}

	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}

func (ctl *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao buscar usuário.")
		return
	}

	var user models.User
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
