package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "fixify/database/repository/booking"
	settlementRepo "fixify/database/repository/settlement"
	"fixify/models"
	"fixify/utils"

	"go.uber.org/zap"
)

// GetInvoice returns the invoice for a booking with its booking and party
// details resolved. Only the booking's parties and admins may read it.
func (svc *DefaultBookingService) GetInvoice(ctx context.Context, principal models.Principal, bookingID string) (*models.InvoiceDetails, error) {
	invoice, err := svc.SettlementRepo.GetInvoiceByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, settlementRepo.ErrInvoiceNotFound) {
			return nil, NotFoundError{Entity: "invoice", ID: bookingID}
		}
		return nil, err
	}

	details := &models.InvoiceDetails{Invoice: *invoice}

	booking, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil && !errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, err
	}
	if booking != nil {
		if err := authorize(principal, booking); err != nil {
			return nil, err
		}
		details.Booking = booking
	}

	// Party snapshots are best-effort decoration.
	logger := utils.GetLogger()
	if customer, err := svc.UserRepo.GetByID(ctx, invoice.CustomerID); err == nil {
		details.Customer = customer
	} else {
		logger.Debug("invoice customer lookup failed", zap.String("customer", invoice.CustomerID), zap.Error(err))
	}
	if provider, err := svc.UserRepo.GetByID(ctx, invoice.ProviderID); err == nil {
		details.Provider = provider
	} else {
		logger.Debug("invoice provider lookup failed", zap.String("provider", invoice.ProviderID), zap.Error(err))
	}

	return details, nil
}

// EarningsReport aggregates the earnings ledger over an optional date range
// ("YYYY-MM-DD" bounds, inclusive). Admin only.
func (svc *DefaultBookingService) EarningsReport(ctx context.Context, principal models.Principal, from, to string) (*models.EarningsReport, error) {
	if principal.Role != models.RoleAdmin {
		return nil, AccessDeniedError{Reason: "earnings reports are admin only"}
	}

	var fromTime, toTime time.Time
	var err error
	if from != "" {
		fromTime, err = time.Parse("2006-01-02", from)
		if err != nil {
			return nil, ValidationError{Reason: "invalid from date: " + from}
		}
	}
	if to != "" {
		toTime, err = time.Parse("2006-01-02", to)
		if err != nil {
			return nil, ValidationError{Reason: "invalid to date: " + to}
		}
		// inclusive upper bound
		toTime = toTime.Add(24*time.Hour - time.Nanosecond)
	}

	return svc.SettlementRepo.AggregateEarnings(ctx, fromTime, toTime)
}
