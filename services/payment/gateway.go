package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// SignatureVerifier checks the proof the payment gateway attaches to a
// captured card payment.
type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}

// HMACVerifier verifies gateway signatures computed as
// HMAC-SHA256("<orderID>|<paymentID>") under the shared gateway secret,
// hex-encoded.
type HMACVerifier struct {
	Secret string
}

// Verify recomputes the expected signature and compares it in constant time.
func (v HMACVerifier) Verify(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(v.Secret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Gateway creates payment orders with the external card processor before the
// client captures the card.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, bookingID string) (string, error)
}

// StripeGateway implements Gateway on Stripe PaymentIntents.
type StripeGateway struct{}

// CreateOrder opens a PaymentIntent for the booking amount and returns its id
// as the gateway order id. Amounts are converted to the smallest currency unit.
func (g StripeGateway) CreateOrder(ctx context.Context, amount float64, currency, bookingID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(currency),
		Metadata: map[string]string{"booking_id": bookingID},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment order: %w", err)
	}
	return pi.ID, nil
}
