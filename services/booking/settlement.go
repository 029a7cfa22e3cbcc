package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "fixify/database/repository/booking"
	settlementRepo "fixify/database/repository/settlement"
	"fixify/models"
	"fixify/services/notification"

	"github.com/google/uuid"
)

// DefaultSettlementAmount is charged when neither the caller nor the booking
// carries an amount.
const DefaultSettlementAmount = 75.0

// defaultCommissionRate applies when no rate was injected from config.
const defaultCommissionRate = 0.15

// CompleteBooking is the settlement workflow: it validates authorization and
// the gateway signature, flips the booking to completed and writes the
// payment, earnings and invoice records in one transaction, then notifies the
// customer.
func (svc *DefaultBookingService) CompleteBooking(ctx context.Context, principal models.Principal, id string, input CompleteBookingInput) (*SettlementResult, error) {
	booking, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NotFoundError{Entity: "booking", ID: id}
		}
		return nil, err
	}

	if principal.Role != models.RoleProvider || booking.ProviderID != principal.ID {
		return nil, AccessDeniedError{Reason: "only the assigned provider can complete a booking"}
	}
	if booking.Status != models.BookingStatusInProgress {
		return nil, ConflictError{Reason: fmt.Sprintf("booking is %s, not in-progress", booking.Status)}
	}
	if !models.IsValidPaymentMethod(input.PaymentMethod) {
		return nil, ValidationError{Reason: "unsupported payment method: " + input.PaymentMethod}
	}
	if input.PaymentMethod == models.PaymentMethodCard {
		if !svc.Verifier.Verify(input.GatewayOrderID, input.GatewayPaymentID, input.GatewaySignature) {
			return nil, InvalidSignatureError{}
		}
	}

	if svc.Locker != nil {
		acquired, err := svc.Locker.Acquire(ctx, booking.ID)
		if err != nil {
			return nil, fmt.Errorf("settlement lock failed: %w", err)
		}
		if !acquired {
			return nil, ConflictError{Reason: "settlement already in progress for this booking"}
		}
		defer svc.Locker.Release(ctx, booking.ID)
	}

	amount := resolveAmount(input.Amount, booking.TotalAmount)
	rate := svc.CommissionRate
	if rate <= 0 {
		rate = defaultCommissionRate
	}
	commission, providerNet := Split(amount, rate)
	now := time.Now()

	transactionID := input.GatewayPaymentID
	if transactionID == "" {
		transactionID = models.CashTransactionID
	}

	payment := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     booking.ID,
		CustomerID:    booking.CustomerID,
		ProviderID:    booking.ProviderID,
		Amount:        amount,
		Method:        input.PaymentMethod,
		Status:        models.PaymentStatusCompleted,
		TransactionID: transactionID,
		PaymentDate:   now,
	}
	earning := &models.PlatformEarning{
		ID:               uuid.New().String(),
		BookingID:        booking.ID,
		ProviderID:       booking.ProviderID,
		CustomerID:       booking.CustomerID,
		ServiceAmount:    amount,
		CommissionRate:   rate,
		CommissionAmount: commission,
		ProviderAmount:   providerNet,
		PaymentMethod:    input.PaymentMethod,
		Status:           models.EarningStatusCompleted,
		TransactionDate:  now,
	}
	invoice := &models.Invoice{
		InvoiceNumber:    GenerateInvoiceNumber(booking.ID, now),
		BookingID:        booking.ID,
		CustomerID:       booking.CustomerID,
		ProviderID:       booking.ProviderID,
		ServiceAmount:    amount,
		CommissionAmount: commission,
		ProviderAmount:   providerNet,
		CommissionRate:   rate * 100,
		PaymentMethod:    input.PaymentMethod,
		Status:           models.InvoiceStatusPaid,
		CreatedAt:        now,
	}

	if err := svc.SettlementRepo.SettleBooking(ctx, booking, payment, earning, invoice); err != nil {
		if errors.Is(err, settlementRepo.ErrAlreadySettled) {
			return nil, ConflictError{Reason: "booking was already settled"}
		}
		return nil, err
	}

	booking.Status = models.BookingStatusCompleted
	booking.TotalAmount = &amount

	svc.NotificationSvc.Notify(ctx, notification.NotifyInput{
		RecipientID: booking.CustomerID,
		Title:       "Booking completed",
		Message:     fmt.Sprintf("Your %s booking is complete. %.2f was charged via %s.", booking.ServiceName, amount, input.PaymentMethod),
		Type:        "booking",
		RelatedID:   booking.ID,
		RelatedType: "booking",
		ActionPath:  "/bookings/" + booking.ID,
		Priority:    models.NotificationPriorityHigh,
	})

	return &SettlementResult{
		Booking:         booking,
		Payment:         payment,
		PlatformEarning: earning,
	}, nil
}

// resolveAmount picks the first defined amount: caller, booking, fallback.
func resolveAmount(callerAmount, bookingAmount *float64) float64 {
	if callerAmount != nil {
		return *callerAmount
	}
	if bookingAmount != nil {
		return *bookingAmount
	}
	return DefaultSettlementAmount
}

// GenerateInvoiceNumber builds "INV-<ms timestamp>-<booking id suffix>". The
// suffix keeps numbers unique even when two bookings settle within the same
// millisecond.
func GenerateInvoiceNumber(bookingID string, at time.Time) string {
	suffix := bookingID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return fmt.Sprintf("INV-%d-%s", at.UnixMilli(), suffix)
}
