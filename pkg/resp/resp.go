package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg, "details": ""})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": msg, "details": ""})
}

// Error maps a domain error to the uniform {message, details} shape.
// Blocked accounts get the dedicated 403 payload with the stored reason.
func Error(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		log.Printf("unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "details": ""})
		return
	}

	switch e.Kind {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"message": e.Message, "details": e.Details})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"message": e.Message, "details": e.Details})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": e.Message, "details": e.Details})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"message": e.Message, "details": e.Details})
	case apperr.KindBlocked:
		c.JSON(http.StatusForbidden, gin.H{
			"message":        e.Message,
			"details":        e.Details,
			"blocked":        true,
			"blocked_reason": e.Reason,
		})
	default:
		log.Printf("internal error: %v", e.Unwrap())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error", "details": ""})
	}
}
