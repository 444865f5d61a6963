package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"kgs-gunshop/models"
	"kgs-gunshop/repositories"
)

type ContactController struct {
	contactRepo *repositories.ContactRepository
}

func NewContactController(repo *repositories.ContactRepository) *ContactController {
	return &ContactController{contactRepo: repo}
}

// @Summary Submit contact form
// @Description Send a message to the store
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.ContactRequest true "Contact message"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/contact [post]
func (ctrl *ContactController) CreateContactMessage(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	message, err := ctrl.contactRepo.Create(c.Request.Context(), models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	})
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to send message. Please try again or call the store."})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Message received. We will get back to you shortly.", "data": message})
}
