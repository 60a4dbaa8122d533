package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"telemind_backend/internal/models"
	"telemind_backend/internal/services"
	"telemind_backend/internal/services/dto"
)

type AppointmentHandler struct {
	*BaseHandler
	appointmentService services.AppointmentService
}

func NewAppointmentHandler(base *BaseHandler, appointmentService services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		BaseHandler:        base,
		appointmentService: appointmentService,
	}
}

func (h *AppointmentHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	appointments := r.Group("/appointments")
	appointments.Use(authMW)
	{
		appointments.POST("", h.Create)
		appointments.PUT("/confirm", h.Confirm)
		appointments.PUT("/:id/status", h.UpdateStatus)
		appointments.GET("/:id", h.GetDetails)
	}
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.appointmentService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Appointment created successfully",
		"data":    response,
	})
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmAppointmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if _, err := h.appointmentService.Confirm(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment confirmed successfully!",
	})
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAppointmentStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	updated, err := h.appointmentService.UpdateStatus(c.Param("id"), models.AppointmentStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
}

func (h *AppointmentHandler) GetDetails(c *gin.Context) {
	details, err := h.appointmentService.GetDetails(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": details})
}
