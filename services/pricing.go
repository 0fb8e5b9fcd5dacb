package services

import (
	"math"

	"github.com/printmate/storefront-backend/models"
)

// Pricing constants. Shipping is free above the threshold, tax is a flat 12%
// rounded to the nearest unit.
const (
	FreeShippingThreshold = 999.0
	FlatShippingFee       = 49.0
	TaxRate               = 0.12
)

// Totals is the price breakdown shown throughout the checkout wizard.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shipping_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// ComputeTotals derives the price breakdown from a set of cart lines. Money
// stays float64 end to end; display rounding is the client's concern.
func ComputeTotals(lines []models.CartLine) Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}

	shippingFee := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shippingFee = 0
	}

	tax := math.Round(subtotal * TaxRate)

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Tax:         tax,
		Total:       subtotal + shippingFee + tax,
	}
}
