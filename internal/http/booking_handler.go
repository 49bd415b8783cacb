package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mamacare-api/internal/domain"
	"mamacare-api/internal/service"
)

// BookingHandler holds dependencies for the booking-notification endpoint.
type BookingHandler struct {
	logger      *zap.Logger
	bookingServ *service.BookingService
}

func NewBookingHandler(logger *zap.Logger, bookingServ *service.BookingService) *BookingHandler {
	return &BookingHandler{
		logger:      logger,
		bookingServ: bookingServ,
	}
}

// SendPaymentEmail handles POST /send-payment-email. The required-field check
// lives in the service so it runs before any send attempt.
func (h *BookingHandler) SendPaymentEmail(c *gin.Context) {
	var req domain.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	if err := h.bookingServ.Dispatch(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.logger.Error("booking dispatch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error while sending email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "confirmation email sent"})
}
