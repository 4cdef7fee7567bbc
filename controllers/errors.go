package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrGuestNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrRoomInUse),
		errors.Is(err, services.ErrGuestInUse),
		errors.Is(err, services.ErrDuplicateRoomNumber),
		errors.Is(err, services.ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidDateRange):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes err as a JSON error. Unclassified errors are
// attached to the context for the request logger and hidden from the client.
func respondServiceError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		utils.JSONError(c, code, "Internal server error")
		return
	}
	utils.JSONError(c, code, err.Error())
}

func respondBindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// idParam parses a positive numeric path parameter, answering 400 otherwise.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+": "+raw)
		return 0, false
	}
	return uint(id), true
}

// optionalIDQuery parses an optional numeric query parameter; absent means 0.
func optionalIDQuery(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+": "+raw)
		return 0, false
	}
	return uint(id), true
}
