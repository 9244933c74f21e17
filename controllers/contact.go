// controllers/contact.go
package controllers

import (
	"log"
	"net/http"

	"barbearia-backend/utils"

	"github.com/gin-gonic/gin"
)

// MessageSender is what the contact endpoint needs from the notifier.
type MessageSender interface {
	Forward(name, phone, message string) error
}

type ContactController struct {
	Sender MessageSender
}

func NewContactController(sender MessageSender) *ContactController {
	return &ContactController{Sender: sender}
}

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// Send handles POST /api/contact from the public site.
func (ctl *ContactController) Send(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Todos os campos são obrigatórios.")
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Telefone inválido.")
		return
	}

	if err := ctl.Sender.Forward(input.Name, input.Phone, input.Message); err != nil {
		log.Printf("Error forwarding contact message: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao enviar a mensagem.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
