package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"telemind_backend/internal/services"
)

// DoctorHandler обслуживает публичный справочник врачей.
type DoctorHandler struct {
	*BaseHandler
	doctorService services.DoctorService
}

func NewDoctorHandler(base *BaseHandler, doctorService services.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		BaseHandler:   base,
		doctorService: doctorService,
	}
}

func (h *DoctorHandler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.List)
		doctors.GET("/:id", h.GetByID)
	}
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctorService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doctors,
		"count":   len(doctors),
	})
}

func (h *DoctorHandler) GetByID(c *gin.Context) {
	doctor, err := h.doctorService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doctor})
}
