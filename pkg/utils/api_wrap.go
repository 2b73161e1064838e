package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP statuses.
// Exhaustion and missing purchases are ordinary user conditions, not faults.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoAvailablePurchase), errors.Is(err, ErrAlreadyExhausted):
		RespondError(c, http.StatusConflict, "No sessions remaining for this duration. Buy a new package first.")
	case errors.Is(err, ErrInvalidDuration):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPurchaseInUse):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotOwner):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrEmailNotAllowed), errors.Is(err, ErrAccountInactive):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrRecordNotFound), errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvariantViolation):
		log.Printf("invariant violation: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
