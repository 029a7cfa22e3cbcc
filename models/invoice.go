package models

import "time"

// Invoice statuses.
const (
	InvoiceStatusPaid   = "paid"
	InvoiceStatusUnpaid = "unpaid"
)

// Invoice is the human-readable settlement record generated once per
// completed booking. CommissionRate here is a percentage (0-100), unlike the
// ledger which stores a fraction.
type Invoice struct {
	InvoiceNumber    string    `bson:"invoice_number" json:"invoiceNumber"` // "INV-<ms timestamp>-<booking id suffix>"
	BookingID        string    `bson:"booking_id" json:"bookingId"`
	CustomerID       string    `bson:"customer_id" json:"customerId"`
	ProviderID       string    `bson:"provider_id" json:"providerId"`
	ServiceAmount    float64   `bson:"service_amount" json:"serviceAmount"`
	CommissionAmount float64   `bson:"commission_amount" json:"commissionAmount"`
	ProviderAmount   float64   `bson:"provider_amount" json:"providerAmount"`
	CommissionRate   float64   `bson:"commission_rate" json:"commissionRate"`
	PaymentMethod    string    `bson:"payment_method" json:"paymentMethod"`
	Status           string    `bson:"status" json:"status"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// InvoiceDetails is an invoice with its booking and party snapshots resolved,
// as served by the fetch-by-booking endpoint.
type InvoiceDetails struct {
	Invoice  Invoice  `json:"invoice"`
	Booking  *Booking `json:"booking,omitempty"`
	Customer *User    `json:"customer,omitempty"`
	Provider *User    `json:"provider,omitempty"`
}
