package controllers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"kgs-gunshop/models"
	"kgs-gunshop/repositories"
)

type AppointmentController struct {
	appointmentRepo *repositories.AppointmentRepository
	email           *models.EmailService
}

func NewAppointmentController(repo *repositories.AppointmentRepository, email *models.EmailService) *AppointmentController {
	return &AppointmentController{appointmentRepo: repo, email: email}
}

// @Summary Book appointment
// @Description Request an in-store appointment (FFL transfer, gunsmithing, consultation)
// @Tags Appointments
// @Accept json
// @Produce json
// @Param appointment body models.AppointmentRequest true "Appointment request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/appointments [post]
func (ctrl *AppointmentController) CreateAppointment(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	appointment, err := ctrl.appointmentRepo.Create(c.Request.Context(), models.Appointment{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   req.Service,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	})
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to book appointment. Please try again or call the store."})
		return
	}

	if ctrl.email != nil {
		go func(a models.Appointment) {
			if err := ctrl.email.SendAppointmentConfirmationEmail(a.Email, a.Name, a.Service, a.Date, a.Time); err != nil {
				log.Println("Failed to send appointment confirmation email:", err)
			}
		}(appointment)
	}

	c.JSON(201, gin.H{"success": true, "message": "Appointment request received. We will contact you to confirm.", "data": appointment})
}
