package controllers

import (
	"net/http"

	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type guestPayload struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"required,max=15,phone"`
	Email string `json:"email" binding:"required,email,max=100"`
}

func (p guestPayload) model() models.Guest {
	return models.Guest{Name: p.Name, Phone: p.Phone, Email: p.Email}
}

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// GetGuests (GET /api/guests)
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, err := ctrl.GuestSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// GetGuestByID (GET /api/guests/:id)
func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	guest, err := ctrl.GuestSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// CreateGuest (POST /api/guests)
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var payload guestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	guest := payload.model()
	if err := ctrl.GuestSvc.Create(c.Request.Context(), &guest); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// UpdateGuest (PUT /api/guests/:id)
func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload guestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	guest, err := ctrl.GuestSvc.Update(c.Request.Context(), id, payload.model())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// DeleteGuest (DELETE /api/guests/:id)
func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.GuestSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}
