package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "fixify/database/repository/booking"
	"fixify/models"
	"fixify/services/notification"
)

// transitions is the closed status graph. Completion is absent on purpose:
// the only path to "completed" is the settlement workflow.
var transitions = map[string][]string{
	models.BookingStatusPending:    {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed:  {models.BookingStatusInProgress, models.BookingStatusCancelled},
	models.BookingStatusInProgress: {models.BookingStatusCancelled},
}

// CanTransition reports whether the generic update endpoint may move a
// booking from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateBooking applies a role-scoped set of field changes to a booking.
// Customers may reschedule (address, date, time, description) and cancel
// their own bookings; providers may advance the status of assigned bookings.
// A status change notifies the counter-party, never the actor.
func (svc *DefaultBookingService) UpdateBooking(ctx context.Context, principal models.Principal, id string, input UpdateBookingInput) (*models.Booking, error) {
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
	if booking.IsTerminal() {
		return nil, ConflictError{Reason: fmt.Sprintf("booking is %s and can no longer change", booking.Status)}
	}

	prevStatus := booking.Status
	if err := applyUpdate(principal.Role, booking, input); err != nil {
		return nil, err
	}

	if err := svc.Repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	if booking.Status != prevStatus {
		svc.notifyStatusChange(ctx, principal, booking)
	}
	return booking, nil
}

// applyUpdate merges the allow-listed fields for the role and validates any
// requested status change against the transition table.
func applyUpdate(role string, booking *models.Booking, input UpdateBookingInput) error {
	switch role {
	case models.RoleCustomer:
		if input.Address != "" {
			booking.Address = input.Address
		}
		if input.PreferredDate != "" {
			booking.PreferredDate = input.PreferredDate
		}
		if input.PreferredTime != "" {
			booking.PreferredTime = input.PreferredTime
		}
		if input.Description != "" {
			booking.Description = input.Description
		}
		if input.Status != "" && input.Status != models.BookingStatusCancelled {
			return AccessDeniedError{Reason: "customers may only cancel"}
		}
	case models.RoleProvider, models.RoleAdmin:
		// providers drive the lifecycle; other fields stay customer-owned
	default:
		return AccessDeniedError{Reason: "unknown role"}
	}

	if input.Status == "" {
		return nil
	}
	if input.Status == models.BookingStatusCompleted {
		return ValidationError{Reason: "completion is performed through the settlement endpoint"}
	}
	if !CanTransition(booking.Status, input.Status) {
		return ConflictError{Reason: fmt.Sprintf("cannot move booking from %s to %s", booking.Status, input.Status)}
	}
	booking.Status = input.Status
	return nil
}

// notifyStatusChange fans out a generic status notification to the party that
// did not make the change.
func (svc *DefaultBookingService) notifyStatusChange(ctx context.Context, actor models.Principal, booking *models.Booking) {
	recipient := booking.CustomerID
	if actor.ID == booking.CustomerID {
		recipient = booking.ProviderID
	}

	svc.NotificationSvc.Notify(ctx, notification.NotifyInput{
		RecipientID: recipient,
		Title:       "Booking " + booking.Status,
		Message:     fmt.Sprintf("Booking for %s on %s is now %s.", booking.ServiceName, booking.PreferredDate, booking.Status),
		Type:        "booking",
		RelatedID:   booking.ID,
		RelatedType: "booking",
		ActionPath:  "/bookings/" + booking.ID,
		Priority:    models.NotificationPriorityMedium,
	})
}
