package handler

import (
	"errors"
	"net/http"
	"strconv"

	"dishlist/backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
	Code  string `json:"code" example:"VALIDATION"`
}

// MessageResponse is returned by actions without a resource body.
type MessageResponse struct {
	Message string `json:"message" example:"Friend request sent"`
}

// respondError writes err with the status of its kind. Internal errors are
// logged and their details are not sent to the client.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error", Code: "INTERNAL"})
		return
	}

	code, message := "ERROR", err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		code, message = appErr.Code, appErr.Message
	}
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "VALIDATION"})
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}
