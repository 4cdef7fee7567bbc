package controllers

import (
	"net/http"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type serviceChargePayload struct {
	ReservationID uint    `json:"reservationId" binding:"required"`
	Item          string  `json:"item" binding:"required,max=100"`
	Price         float64 `json:"price" binding:"required,gt=0"`
}

type BillingController struct {
	BillingSvc *services.BillingService
	ServiceLog *services.RoomServiceLog
}

func NewBillingController(svc *services.BillingService, log *services.RoomServiceLog) *BillingController {
	return &BillingController{BillingSvc: svc, ServiceLog: log}
}

// GetBills (GET /api/billing?reservation_id=)
func (ctrl *BillingController) GetBills(c *gin.Context) {
	reservationID, ok := optionalIDQuery(c, "reservation_id")
	if !ok {
		return
	}

	bills, err := ctrl.BillingSvc.List(c.Request.Context(), reservationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bills)
}

// GenerateStayBill (POST /api/reservations/:id/bill)
func (ctrl *BillingController) GenerateStayBill(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	bill, err := ctrl.BillingSvc.GenerateStayBill(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// PayBill (POST /api/billing/:id/pay)
func (ctrl *BillingController) PayBill(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	bill, err := ctrl.BillingSvc.PayBill(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// GetRoomServices (GET /api/room-services?reservation_id=)
func (ctrl *BillingController) GetRoomServices(c *gin.Context) {
	reservationID, ok := optionalIDQuery(c, "reservation_id")
	if !ok {
		return
	}

	items, err := ctrl.ServiceLog.List(c.Request.Context(), reservationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// AddRoomService (POST /api/room-services)
func (ctrl *BillingController) AddRoomService(c *gin.Context) {
	var payload serviceChargePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	svc, bill, err := ctrl.BillingSvc.AddServiceCharge(c.Request.Context(), payload.ReservationID, payload.Item, payload.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"service": svc, "bill": bill})
}
