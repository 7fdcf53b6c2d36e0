package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	RespondErrorDetails(c, code, message, nil)
}

func RespondErrorDetails(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Details: details,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var (
		validation *ValidationError
		detailed   *DetailedError
		details    interface{}
		message    string
	)
	if errors.As(err, &detailed) {
		details = detailed.Details
		message = detailed.Message
	}

	switch {
	case errors.As(err, &validation):
		RespondErrorDetails(c, http.StatusBadRequest, validation.Error(), details)
	case errors.Is(err, ErrPriceMismatch):
		RespondErrorDetails(c, http.StatusBadRequest, "Price verification failed", details)
	case errors.Is(err, ErrPaymentNotVerified):
		RespondErrorDetails(c, http.StatusBadRequest, "Payment could not be verified", details)
	case errors.Is(err, ErrInvalidRequest):
		RespondErrorDetails(c, http.StatusBadRequest, orDefault(message, err.Error()), details)
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrFileTooLarge):
		RespondErrorDetails(c, http.StatusRequestEntityTooLarge, orDefault(message, "File too large"), details)
	case errors.Is(err, ErrUnsupportedMedia):
		RespondErrorDetails(c, http.StatusUnsupportedMediaType, orDefault(message, "Unsupported file type"), details)
	case errors.Is(err, ErrInvalidSignature):
		RespondError(c, http.StatusUnauthorized, "Invalid signature")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, orDefault(message, "Not found"))
	case errors.Is(err, ErrMissingConfig):
		zap.L().Error("configuration error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Server configuration error")
	case errors.Is(err, ErrUpstream):
		zap.L().Error("upstream error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusBadGateway, "Upstream service unavailable")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled error", zap.Error(err), zap.String("trace_id", c.GetString("trace_id")))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
