package models

import "time"

// PlatformEarning statuses.
const (
	EarningStatusPending   = "pending"
	EarningStatusCompleted = "completed"
	EarningStatusRefunded  = "refunded"
)

// PlatformEarning is one row of the append-only earnings ledger, written once
// per completed booking and never mutated. Reporting aggregates read it later.
type PlatformEarning struct {
	ID               string    `bson:"id" json:"id"`
	BookingID        string    `bson:"booking_id" json:"bookingId"`
	ProviderID       string    `bson:"provider_id" json:"providerId"`
	CustomerID       string    `bson:"customer_id" json:"customerId"`
	ServiceAmount    float64   `bson:"service_amount" json:"serviceAmount"`       // gross amount charged
	CommissionRate   float64   `bson:"commission_rate" json:"commissionRate"`     // fraction, e.g. 0.15
	CommissionAmount float64   `bson:"commission_amount" json:"commissionAmount"` // platform's cut
	ProviderAmount   float64   `bson:"provider_amount" json:"providerAmount"`     // net paid out to the provider
	PaymentMethod    string    `bson:"payment_method" json:"paymentMethod"`
	Status           string    `bson:"status" json:"status"`
	TransactionDate  time.Time `bson:"transaction_date" json:"transactionDate"`
}

// EarningsReport is the aggregate shape returned to admins.
type EarningsReport struct {
	TotalGross      float64 `bson:"total_gross" json:"totalGross"`
	TotalCommission float64 `bson:"total_commission" json:"totalCommission"`
	TotalProvider   float64 `bson:"total_provider" json:"totalProvider"`
	Count           int64   `bson:"count" json:"count"`
}
