package booking

import (
	"context"
	"errors"
	"testing"

	"fixify/models"
)

func TestCreateBookingSnapshotsCatalog(t *testing.T) {
	svc, _, _, notifier := newTestService()
	svc.CatalogRepo.(*fakeCatalogRepo).services["svc-2"] = &models.Service{
		ID:         "svc-2",
		ProviderID: "P1",
		Name:       "Gutter Cleaning",
		BasePrice:  130,
		Active:     true,
	}
	customer := models.Principal{ID: "C1", Role: models.RoleCustomer}

	booking, err := svc.CreateBooking(context.Background(), customer, CreateBookingInput{
		ServiceID:     "svc-2",
		Address:       "9 Elm Road",
		PreferredDate: "2026-09-20",
		PreferredTime: "morning",
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if booking.Status != models.BookingStatusPending {
		t.Errorf("status = %s, want pending", booking.Status)
	}
	if booking.ProviderID != "P1" || booking.ServiceName != "Gutter Cleaning" {
		t.Errorf("catalog snapshot not applied: %+v", booking)
	}
	if booking.TotalAmount == nil || *booking.TotalAmount != 130 {
		t.Errorf("totalAmount = %v, want 130 from catalog price", booking.TotalAmount)
	}
	if booking.CustomerName != "Casey" || booking.CustomerEmail != "casey@example.com" {
		t.Errorf("customer snapshot not applied: %+v", booking)
	}

	if len(notifier.sent) != 1 || notifier.sent[0].RecipientID != "P1" {
		t.Fatalf("notifications = %+v, want one to provider P1", notifier.sent)
	}
}

func TestCreateBookingRejectsNonCustomers(t *testing.T) {
	svc, _, _, _ := newTestService()
	for _, role := range []string{models.RoleProvider, models.RoleAdmin} {
		_, err := svc.CreateBooking(context.Background(), models.Principal{ID: "x", Role: role}, CreateBookingInput{ServiceID: "svc-1"})
		var denied AccessDeniedError
		if !errors.As(err, &denied) {
			t.Errorf("role %s: error = %v, want AccessDeniedError", role, err)
		}
	}
}

func TestCreateBookingUnknownService(t *testing.T) {
	svc, _, _, _ := newTestService()
	customer := models.Principal{ID: "C1", Role: models.RoleCustomer}

	_, err := svc.CreateBooking(context.Background(), customer, CreateBookingInput{ServiceID: "missing"})
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestCreateBookingInactiveService(t *testing.T) {
	svc, _, _, _ := newTestService()
	svc.CatalogRepo.(*fakeCatalogRepo).services["svc-3"] = &models.Service{
		ID: "svc-3", ProviderID: "P1", Name: "Retired", BasePrice: 50, Active: false,
	}
	customer := models.Principal{ID: "C1", Role: models.RoleCustomer}

	_, err := svc.CreateBooking(context.Background(), customer, CreateBookingInput{ServiceID: "svc-3"})
	var validation ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestGetBookingOwnership(t *testing.T) {
	tests := []struct {
		name      string
		principal models.Principal
		wantErr   bool
	}{
		{"owning customer", models.Principal{ID: "C1", Role: models.RoleCustomer}, false},
		{"assigned provider", models.Principal{ID: "P1", Role: models.RoleProvider}, false},
		{"admin", models.Principal{ID: "A1", Role: models.RoleAdmin}, false},
		{"foreign customer", models.Principal{ID: "C2", Role: models.RoleCustomer}, true},
		{"foreign provider", models.Principal{ID: "P2", Role: models.RoleProvider}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newTestService()
			_, err := svc.GetBooking(context.Background(), tt.principal, "booking-b1")
			if tt.wantErr {
				var denied AccessDeniedError
				if !errors.As(err, &denied) {
					t.Fatalf("error = %v, want AccessDeniedError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetBooking: %v", err)
			}
		})
	}
}

func TestListBookingsScopedByRole(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	bookings.bookings["booking-b2"] = &models.Booking{ID: "booking-b2", CustomerID: "C2", ProviderID: "P1", Status: models.BookingStatusPending}

	got, err := svc.ListBookings(context.Background(), models.Principal{ID: "C1", Role: models.RoleCustomer})
	if err != nil {
		t.Fatalf("ListBookings customer: %v", err)
	}
	if len(got) != 1 || got[0].CustomerID != "C1" {
		t.Errorf("customer list = %+v, want only C1's bookings", got)
	}

	got, err = svc.ListBookings(context.Background(), models.Principal{ID: "P1", Role: models.RoleProvider})
	if err != nil {
		t.Fatalf("ListBookings provider: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("provider list = %d bookings, want 2", len(got))
	}
}
