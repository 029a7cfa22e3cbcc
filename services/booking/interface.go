package booking

import (
	"context"

	"fixify/database/repository"
	"fixify/models"
	"fixify/services/notification"
	"fixify/services/payment"
)

// CreateBookingInput is the customer-supplied part of a new booking. The
// service snapshot (name, price, provider) comes from the catalog, never from
// the client.
type CreateBookingInput struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PreferredDate string `json:"preferredDate" binding:"required"`
	PreferredTime string `json:"preferredTime" binding:"required"`
	Description   string `json:"description"`
}

// UpdateBookingInput carries the client-mutable booking fields. Which of them
// actually apply depends on the caller's role.
type UpdateBookingInput struct {
	Status        string `json:"status"`
	Address       string `json:"address"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Description   string `json:"description"`
}

// CompleteBookingInput is the provider's settlement request.
type CompleteBookingInput struct {
	Amount           *float64 `json:"amount"`
	PaymentMethod    string   `json:"paymentMethod" binding:"required"`
	GatewayPaymentID string   `json:"gatewayPaymentId"`
	GatewayOrderID   string   `json:"gatewayOrderId"`
	GatewaySignature string   `json:"gatewaySignature"`
}

// SettlementResult is what a successful completion returns.
type SettlementResult struct {
	Booking         *models.Booking         `json:"booking"`
	Payment         *models.Payment         `json:"payment"`
	PlatformEarning *models.PlatformEarning `json:"platformEarning"`
}

// BookingService manages the booking lifecycle and its settlement.
type BookingService interface {
	CreateBooking(ctx context.Context, principal models.Principal, input CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, principal models.Principal, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, principal models.Principal) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, principal models.Principal, id string, input UpdateBookingInput) (*models.Booking, error)
	CompleteBooking(ctx context.Context, principal models.Principal, id string, input CompleteBookingInput) (*SettlementResult, error)
	GetInvoice(ctx context.Context, principal models.Principal, bookingID string) (*models.InvoiceDetails, error)
	EarningsReport(ctx context.Context, principal models.Principal, from, to string) (*models.EarningsReport, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo            repository.BookingRepository
	CatalogRepo     repository.ServiceRepository
	SettlementRepo  repository.SettlementRepository
	UserRepo        repository.UserRepository
	NotificationSvc notification.NotificationService
	Verifier        payment.SignatureVerifier
	Locker          SettlementLocker
	CommissionRate  float64 // fraction, injected from config
}
