package models

import "time"

// Payment methods accepted at settlement.
const (
	PaymentMethodCash          = "cash"
	PaymentMethodCard          = "card"
	PaymentMethodDigitalWallet = "digital_wallet"
)

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// CashTransactionID is the sentinel recorded when no gateway reference applies.
const CashTransactionID = "CASH"

// Payment records the money collected for a completed booking.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"booking_id" json:"bookingId"`
	CustomerID    string    `bson:"customer_id" json:"customerId"`
	ProviderID    string    `bson:"provider_id" json:"providerId"`
	Amount        float64   `bson:"amount" json:"amount"`
	Method        string    `bson:"method" json:"method"`
	Status        string    `bson:"status" json:"status"`
	TransactionID string    `bson:"transaction_id,omitempty" json:"transactionId,omitempty"` // gateway payment id, or "CASH"
	PaymentDate   time.Time `bson:"payment_date" json:"paymentDate"`
}

// IsValidPaymentMethod reports whether m is one of the accepted methods.
func IsValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodDigitalWallet:
		return true
	}
	return false
}
