package models

import "time"

// Booking statuses. Transitions between them are enforced centrally by the
// booking service; handlers never write a status directly.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in-progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Booking represents a customer's request for a provider's service. Customer
// and service details are denormalized at creation time so the record stays
// readable even if the source documents change later.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	CustomerID    string    `bson:"customer_id" json:"customerId"`
	ProviderID    string    `bson:"provider_id" json:"providerId"`
	ServiceID     string    `bson:"service_id" json:"serviceId"`
	CustomerName  string    `bson:"customer_name" json:"customerName"`
	CustomerEmail string    `bson:"customer_email" json:"customerEmail"`
	CustomerPhone string    `bson:"customer_phone" json:"customerPhone"`
	ServiceName   string    `bson:"service_name" json:"serviceName"`
	Address       string    `bson:"address" json:"address"`
	PreferredDate string    `bson:"preferred_date" json:"preferredDate"` // "YYYY-MM-DD"
	PreferredTime string    `bson:"preferred_time" json:"preferredTime"` // free-text slot label, e.g. "morning"
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Status        string    `bson:"status" json:"status"`
	TotalAmount   *float64  `bson:"total_amount,omitempty" json:"totalAmount,omitempty"` // nil until priced
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsTerminal reports whether no further mutation is allowed on the booking.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}
