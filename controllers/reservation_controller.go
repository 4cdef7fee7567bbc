package controllers

import (
	"net/http"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type createReservationPayload struct {
	GuestID  uint   `json:"guestId" binding:"required"`
	RoomID   uint   `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required,stay_date"`
	CheckOut string `json:"checkOut" binding:"required,stay_date"`
}

type editReservationPayload struct {
	CheckIn  string `json:"checkIn" binding:"required,stay_date"`
	CheckOut string `json:"checkOut" binding:"required,stay_date"`
}

// ---------------------------
// Controller
// ---------------------------

type ReservationController struct {
	ReservationSvc *services.ReservationService
	RoomSvc        *services.RoomService
}

func NewReservationController(svc *services.ReservationService, rooms *services.RoomService) *ReservationController {
	return &ReservationController{ReservationSvc: svc, RoomSvc: rooms}
}

func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	list, err := ctrl.ReservationSvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetAvailableRooms feeds the booking form's room picker.
func (ctrl *ReservationController) GetAvailableRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.ListAvailable(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	reservation, err := ctrl.ReservationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	reservation, err := ctrl.ReservationSvc.Create(c.Request.Context(), payload.GuestID, payload.RoomID, payload.CheckIn, payload.CheckOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload editReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	reservation, err := ctrl.ReservationSvc.Edit(c.Request.Context(), id, payload.CheckIn, payload.CheckOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.ReservationSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Reservation deleted successfully, room is now available!"})
}
