package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "fixify/database/repository/booking"
	catalogRepo "fixify/database/repository/catalog"
	"fixify/models"
	"fixify/services/notification"
	"fixify/utils"

	"go.uber.org/zap"
)

// CreateBooking creates a pending booking for the acting customer,
// snapshotting service name, price and provider from the catalog.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, principal models.Principal, input CreateBookingInput) (*models.Booking, error) {
	if principal.Role != models.RoleCustomer {
		return nil, AccessDeniedError{Reason: "only customers can create bookings"}
	}

	service, err := svc.CatalogRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, NotFoundError{Entity: "service", ID: input.ServiceID}
		}
		return nil, err
	}
	if !service.Active {
		return nil, ValidationError{Reason: "service is no longer offered"}
	}

	customer, err := svc.UserRepo.GetByID(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	price := service.BasePrice
	booking := &models.Booking{
		CustomerID:    principal.ID,
		ProviderID:    service.ProviderID,
		ServiceID:     service.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		ServiceName:   service.Name,
		Address:       input.Address,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Description:   input.Description,
		Status:        models.BookingStatusPending,
		TotalAmount:   &price,
	}
	if err := svc.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("booking", booking.ID),
		zap.String("customer", booking.CustomerID),
		zap.String("provider", booking.ProviderID))

	svc.NotificationSvc.Notify(ctx, notification.NotifyInput{
		RecipientID: booking.ProviderID,
		Title:       "New booking request",
		Message:     fmt.Sprintf("%s requested %s on %s (%s).", booking.CustomerName, booking.ServiceName, booking.PreferredDate, booking.PreferredTime),
		Type:        "booking",
		RelatedID:   booking.ID,
		RelatedType: "booking",
		ActionPath:  "/bookings/" + booking.ID,
		Priority:    models.NotificationPriorityMedium,
	})

	return booking, nil
}

// GetBooking returns a booking, subject to the ownership check.
func (svc *DefaultBookingService) GetBooking(ctx context.Context, principal models.Principal, id string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NotFoundError{Entity: "booking", ID: id}
		}
		return nil, err
	}
	if err := authorize(principal, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListBookings returns the principal's bookings: created ones for customers,
// assigned ones for providers.
func (svc *DefaultBookingService) ListBookings(ctx context.Context, principal models.Principal) ([]models.Booking, error) {
	switch principal.Role {
	case models.RoleCustomer:
		return svc.Repo.ListByCustomer(ctx, principal.ID)
	case models.RoleProvider:
		return svc.Repo.ListByProvider(ctx, principal.ID)
	}
	return nil, AccessDeniedError{Reason: "role has no booking list"}
}

// authorize enforces the ownership contract: customers touch only their own
// bookings, providers only assigned ones. Admins pass.
func authorize(principal models.Principal, booking *models.Booking) error {
	switch principal.Role {
	case models.RoleCustomer:
		if booking.CustomerID != principal.ID {
			return AccessDeniedError{Reason: "booking belongs to another customer"}
		}
	case models.RoleProvider:
		if booking.ProviderID != principal.ID {
			return AccessDeniedError{Reason: "booking is assigned to another provider"}
		}
	case models.RoleAdmin:
		// unrestricted
	default:
		return AccessDeniedError{Reason: "unknown role"}
	}
	return nil
}
