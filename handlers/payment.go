package handlers

import (
	"net/http"

	"fixify/middleware"
	"fixify/services/booking"
	"fixify/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the card-payment order endpoint.
type PaymentHandler struct {
	Bookings booking.BookingService
	Gateway  payment.Gateway
	Logger   *zap.Logger
}

// NewPaymentHandler returns a PaymentHandler.
func NewPaymentHandler(bookings booking.BookingService, gateway payment.Gateway, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Bookings: bookings, Gateway: gateway, Logger: logger}
}

// CreatePaymentOrder handles POST /api/bookings/:id/payment-order. It opens a
// gateway order for the booking's amount so the client can capture the card;
// the resulting payment id and signature come back at settlement.
func (h *PaymentHandler) CreatePaymentOrder(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	b, err := h.Bookings.GetBooking(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	amount := booking.DefaultSettlementAmount
	if b.TotalAmount != nil {
		amount = *b.TotalAmount
	}

	orderID, err := h.Gateway.CreateOrder(c.Request.Context(), amount, "usd", b.ID)
	if err != nil {
		h.Logger.Error("payment order creation failed", zap.String("booking", b.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId": orderID,
		"amount":  amount,
	})
}
