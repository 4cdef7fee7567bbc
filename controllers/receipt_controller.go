package controllers

import (
	"net/http"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type ReceiptController struct {
	ReceiptSvc *services.ReceiptService
	Title      string
	Currency   string
}

func NewReceiptController(svc *services.ReceiptService, title, currency string) *ReceiptController {
	return &ReceiptController{ReceiptSvc: svc, Title: title, Currency: currency}
}

// GetReceipt (GET /api/reservations/:id/receipt)
func (ctrl *ReceiptController) GetReceipt(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	receipt, err := ctrl.ReceiptSvc.Build(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, receipt)
}

// DownloadReceipt (GET /api/reservations/:id/receipt.pdf)
func (ctrl *ReceiptController) DownloadReceipt(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	receipt, err := ctrl.ReceiptSvc.Build(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pdf, err := utils.RenderReceiptPDF(ctrl.document(receipt))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.ReceiptFilename(receipt.ReservationID)+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (ctrl *ReceiptController) document(r *services.Receipt) utils.ReceiptDocument {
	doc := utils.ReceiptDocument{
		Title:            ctrl.Title,
		Currency:         ctrl.Currency,
		GuestName:        r.GuestName,
		RoomType:         r.RoomType,
		RoomNumber:       r.RoomNumber,
		RoomPrice:        r.RoomPrice,
		CheckIn:          utils.FormatReceiptDate(r.CheckIn),
		CheckOut:         utils.FormatReceiptDate(r.CheckOut),
		TotalServiceCost: r.TotalServiceCost,
		GrandTotal:       r.GrandTotal,
	}
	for _, line := range r.Services {
		doc.Services = append(doc.Services, utils.ReceiptItem{Item: line.Item, Price: line.Price})
	}
	return doc
}
