package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/errs"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SendError(c *gin.Context, statusCode int, message string, err error) {
	response := APIResponse{
		Success: false,
		Message: message,
	}

	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(statusCode, response)
}

// SendServiceError maps the engine's error taxonomy onto status codes:
// validation 400, not found 404, conflict 409, anything else 500.
func SendServiceError(c *gin.Context, message string, err error) {
	switch {
	case errs.IsValidation(err):
		SendError(c, http.StatusBadRequest, message, err)
	case errs.IsNotFound(err):
		SendError(c, http.StatusNotFound, message, err)
	case errs.IsConflict(err):
		SendError(c, http.StatusConflict, message, err)
	default:
		SendError(c, http.StatusInternalServerError, message, err)
	}
}

func SendValidationError(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, message, nil)
}

func SendUnauthorized(c *gin.Context, message string) {
	SendError(c, http.StatusUnauthorized, message, nil)
}
