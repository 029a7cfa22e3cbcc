package booking

import (
	"context"
	"errors"
	"testing"

	"fixify/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusInProgress, false},
		{models.BookingStatusConfirmed, models.BookingStatusInProgress, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{models.BookingStatusInProgress, models.BookingStatusCancelled, true},
		// Completion never goes through the generic transition graph.
		{models.BookingStatusInProgress, models.BookingStatusCompleted, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestUpdateBookingProviderAdvancesStatus(t *testing.T) {
	svc, bookings, _, notifier := newTestService()
	bookings.bookings["booking-b1"].Status = models.BookingStatusPending
	provider := models.Principal{ID: "P1", Role: models.RoleProvider}

	updated, err := svc.UpdateBooking(context.Background(), provider, "booking-b1", UpdateBookingInput{
		Status: models.BookingStatusConfirmed,
	})
	if err != nil {
		t.Fatalf("UpdateBooking: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", updated.Status)
	}

	// The counter-party hears about it, never the actor.
	if len(notifier.sent) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifier.sent))
	}
	if notifier.sent[0].RecipientID != "C1" {
		t.Errorf("notification recipient = %s, want customer C1", notifier.sent[0].RecipientID)
	}
}

func TestUpdateBookingCustomerCancelNotifiesProvider(t *testing.T) {
	svc, bookings, _, notifier := newTestService()
	bookings.bookings["booking-b1"].Status = models.BookingStatusPending
	customer := models.Principal{ID: "C1", Role: models.RoleCustomer}

	updated, err := svc.UpdateBooking(context.Background(), customer, "booking-b1", UpdateBookingInput{
		Status: models.BookingStatusCancelled,
	})
	if err != nil {
		t.Fatalf("UpdateBooking: %v", err)
	}
	if updated.Status != models.BookingStatusCancelled {
		t.Errorf("status = %s, want cancelled", updated.Status)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].RecipientID != "P1" {
		t.Fatalf("notification = %+v, want one to provider P1", notifier.sent)
	}
}

func TestUpdateBookingCustomerReschedules(t *testing.T) {
	svc, bookings, _, notifier := newTestService()
	bookings.bookings["booking-b1"].Status = models.BookingStatusPending
	customer := models.Principal{ID: "C1", Role: models.RoleCustomer}

	updated, err := svc.UpdateBooking(context.Background(), customer, "booking-b1", UpdateBookingInput{
		Address:       "12 New Street",
		PreferredDate: "2026-09-14",
		PreferredTime: "afternoon",
	})
	if err != nil {
		t.Fatalf("UpdateBooking: %v", err)
	}
	if updated.Address != "12 New Street" || updated.PreferredDate != "2026-09-14" || updated.PreferredTime != "afternoon" {
		t.Errorf("fields not applied: %+v", updated)
	}
	// No status change, no notification.
	if len(notifier.sent) != 0 {
		t.Errorf("notifications = %d, want 0 without a status change", len(notifier.sent))
	}
}

func TestUpdateBookingRejectsIllegalTransition(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	bookings.bookings["booking-b1"].Status = models.BookingStatusPending
	provider := models.Principal{ID: "P1", Role: models.RoleProvider}

	_, err := svc.UpdateBooking(context.Background(), provider, "booking-b1", UpdateBookingInput{
		Status: models.BookingStatusInProgress, // pending cannot skip confirmed
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("error = %v, want ConflictError", err)
	}
}

func TestUpdateBookingRejectsCompletionRequest(t *testing.T) {
	svc, _, _, _ := newTestService()
	provider := models.Principal{ID: "P1", Role: models.RoleProvider}

	_, err := svc.UpdateBooking(context.Background(), provider, "booking-b1", UpdateBookingInput{
		Status: models.BookingStatusCompleted,
	})
	var validation ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationError pointing at the settlement endpoint", err)
	}
}

func TestUpdateBookingOwnership(t *testing.T) {
	tests := []struct {
		name      string
		principal models.Principal
	}{
		{"foreign customer", models.Principal{ID: "C2", Role: models.RoleCustomer}},
		{"foreign provider", models.Principal{ID: "P2", Role: models.RoleProvider}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, bookings, _, _ := newTestService()
			bookings.bookings["booking-b1"].Status = models.BookingStatusPending

			_, err := svc.UpdateBooking(context.Background(), tt.principal, "booking-b1", UpdateBookingInput{
				Status: models.BookingStatusCancelled,
			})
			var denied AccessDeniedError
			if !errors.As(err, &denied) {
				t.Fatalf("error = %v, want AccessDeniedError", err)
			}
			if bookings.updates != 0 {
				t.Error("booking was mutated despite failed ownership check")
			}
		})
	}
}

func TestUpdateBookingCustomerCannotAdvanceStatus(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	bookings.bookings["booking-b1"].Status = models.BookingStatusPending
	customer := models.Principal{ID: "C1", Role: models.RoleCustomer}

	_, err := svc.UpdateBooking(context.Background(), customer, "booking-b1", UpdateBookingInput{
		Status: models.BookingStatusConfirmed,
	})
	var denied AccessDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("error = %v, want AccessDeniedError (customers may only cancel)", err)
	}
}

func TestUpdateBookingTerminalStateFrozen(t *testing.T) {
	for _, status := range []string{models.BookingStatusCompleted, models.BookingStatusCancelled} {
		t.Run(status, func(t *testing.T) {
			svc, bookings, _, _ := newTestService()
			bookings.bookings["booking-b1"].Status = status
			provider := models.Principal{ID: "P1", Role: models.RoleProvider}

			_, err := svc.UpdateBooking(context.Background(), provider, "booking-b1", UpdateBookingInput{
				Status: models.BookingStatusCancelled,
			})
			var conflict ConflictError
			if !errors.As(err, &conflict) {
				t.Fatalf("error = %v, want ConflictError for terminal booking", err)
			}
		})
	}
}
