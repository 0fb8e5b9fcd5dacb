package models

import "time"

// MaxLineQuantity matches the quantity stepper clamp on the product page.
const MaxLineQuantity = 99

// CartLine is one product entry in the shopping cart. At most one line per
// product; repeated adds increment Quantity.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartLine `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}
