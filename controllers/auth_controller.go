package controllers

import (
	"net/http"

	"hotel-frontdesk/middleware"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type credentialsPayload struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

// Register (POST /api/auth/register)
func (ctrl *AuthController) Register(c *gin.Context) {
	var payload credentialsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ctrl.AuthSvc.Register(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}

// Login (POST /api/auth/login)
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload credentialsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	token, id, err := ctrl.AuthSvc.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":     token,
		"user":      id,
		"expiresAt": id.ExpiresAt,
	})
}

// Logout (POST /api/auth/logout)
func (ctrl *AuthController) Logout(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Please log in first!")
		return
	}

	if err := ctrl.AuthSvc.Logout(c.Request.Context(), *id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Logged out successfully!"})
}

// Me (GET /api/me)
func (ctrl *AuthController) Me(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Please log in first!")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, id)
}
