package controllers

import (
	"net/http"
	"strconv"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type roomPayload struct {
	RoomNumber string  `json:"roomNumber" binding:"required,max=10"`
	RoomType   string  `json:"roomType" binding:"required,max=50"`
	Price      float64 `json:"price" binding:"required,gt=0"`
}

func (p roomPayload) input() services.RoomInput {
	return services.RoomInput{RoomNumber: p.RoomNumber, RoomType: p.RoomType, Price: p.Price}
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// ----------------------------------------------------
// GET /api/rooms?room_type=Double
// ----------------------------------------------------
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.List(c.Request.Context(), c.Query("room_type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ----------------------------------------------------
// GET /api/rooms/recommend?room_type=Single&limit=3
// ----------------------------------------------------
func (ctrl *RoomController) RecommendRooms(c *gin.Context) {
	limit := services.DefaultRecommendLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit: "+raw)
			return
		}
		limit = n
	}

	rooms, err := ctrl.RoomSvc.Recommend(c.Request.Context(), c.DefaultQuery("room_type", services.DefaultRecommendType), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	room, err := ctrl.RoomSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// POST /api/rooms
// ----------------------------------------------------
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctrl.RoomSvc.Create(c.Request.Context(), payload.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// PUT /api/rooms/:id
// ----------------------------------------------------
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctrl.RoomSvc.Update(c.Request.Context(), id, payload.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// DELETE /api/rooms/:id
// ----------------------------------------------------
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.RoomSvc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
