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

// HandleServiceError maps service-layer errors onto HTTP classes. Messages stay
// coarse on purpose; internals are logged, never returned.
func HandleServiceError(c *gin.Context, err error) {
	var genErr *GenerationError
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "This email address is already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Authentication failed")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusUnauthorized, "Account not found")
	case errors.Is(err, ErrOnboardingCompleted):
		RespondError(c, http.StatusBadRequest, "Onboarding has already been completed")
	case errors.Is(err, ErrInvalidBirthDate):
		RespondError(c, http.StatusBadRequest, "Birth date must be in YYYY-MM-DD format")
	case errors.Is(err, ErrInsufficientCredits):
		RespondError(c, http.StatusBadRequest, "Insufficient credits, please top up")
	case errors.Is(err, ErrMissingGuestData):
		RespondError(c, http.StatusBadRequest, "Guest details are required")
	case errors.Is(err, ErrTooManyPhotos):
		RespondError(c, http.StatusBadRequest, "At most 5 photos are allowed")
	case errors.Is(err, ErrFortuneNotFound):
		RespondError(c, http.StatusNotFound, "Fortune not found")
	case errors.Is(err, ErrFortuneForbidden):
		RespondError(c, http.StatusForbidden, "You do not have access to this fortune")
	case errors.Is(err, ErrInvalidPackage):
		RespondError(c, http.StatusBadRequest, "Invalid package id")
	case errors.Is(err, ErrInvalidPlan):
		RespondError(c, http.StatusBadRequest, "Invalid plan type")
	case errors.Is(err, ErrSubscriptionExists):
		RespondError(c, http.StatusBadRequest, "An active subscription already exists")
	case errors.Is(err, ErrNoActiveSubscription):
		RespondError(c, http.StatusBadRequest, "No active subscription found")
	case errors.As(err, &genErr):
		log.Printf("generation error: %v", err)
		RespondError(c, http.StatusBadGateway, "Fortune could not be generated, please try again")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
