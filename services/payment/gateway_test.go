package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHMACVerifier(t *testing.T) {
	v := HMACVerifier{Secret: "gateway-secret"}

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{
			name:      "valid signature",
			orderID:   "order_123",
			paymentID: "pay_456",
			signature: sign("gateway-secret", "order_123", "pay_456"),
			want:      true,
		},
		{
			name:      "wrong secret",
			orderID:   "order_123",
			paymentID: "pay_456",
			signature: sign("other-secret", "order_123", "pay_456"),
			want:      false,
		},
		{
			name:      "swapped order and payment ids",
			orderID:   "order_123",
			paymentID: "pay_456",
			signature: sign("gateway-secret", "pay_456", "order_123"),
			want:      false,
		},
		{
			name:      "tampered signature",
			orderID:   "order_123",
			paymentID: "pay_456",
			signature: "deadbeef",
			want:      false,
		},
		{
			name:      "missing order id",
			orderID:   "",
			paymentID: "pay_456",
			signature: sign("gateway-secret", "", "pay_456"),
			want:      false,
		},
		{
			name:      "missing payment id",
			orderID:   "order_123",
			paymentID: "",
			signature: sign("gateway-secret", "order_123", ""),
			want:      false,
		},
		{
			name:      "missing signature",
			orderID:   "order_123",
			paymentID: "pay_456",
			signature: "",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Verify(tt.orderID, tt.paymentID, tt.signature); got != tt.want {
				t.Errorf("Verify(%q, %q, %q) = %v, want %v", tt.orderID, tt.paymentID, tt.signature, got, tt.want)
			}
		})
	}
}

func TestHMACVerifierKnownVector(t *testing.T) {
	// HMAC-SHA256("order_1|pay_1") under key "secret".
	v := HMACVerifier{Secret: "secret"}
	const expected = "52115a0d3400de9e86aade1f1b6eba9e8974604f4e267a9e9a16633a4c8dd2cb"
	if !v.Verify("order_1", "pay_1", expected) {
		t.Error("known vector rejected")
	}
}
