package booking

import "math"

// round2 rounds half-up to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Split computes the platform commission and the provider net for a gross
// service amount. The commission is rounded to the cent; any rounding residue
// lands in the provider net, so commission + net always equals the amount.
func Split(amount, rate float64) (commission, providerNet float64) {
	commission = round2(amount * rate)
	providerNet = amount - commission
	return commission, providerNet
}
