package models

import "time"

// CheckoutStep is one state of the linear checkout wizard.
type CheckoutStep int

const (
	StepCartReview CheckoutStep = iota
	StepShippingDetails
	StepPaymentMethod
	StepOrderSummary
	StepOrderConfirmation
)

var stepNames = [...]string{
	"Cart Review",
	"Shipping Details",
	"Payment Method",
	"Order Summary",
	"Order Confirmation",
}

func (s CheckoutStep) String() string {
	if s < StepCartReview || s > StepOrderConfirmation {
		return "Unknown"
	}
	return stepNames[s]
}

// Payment methods. UPI is listed in the storefront but not selectable yet.
const (
	PaymentCOD = "COD"
	PaymentUPI = "UPI"
)

// Address types offered on the shipping form.
const (
	AddressTypeHome  = "Home"
	AddressTypeWork  = "Work"
	AddressTypeOther = "Other"
)

// ShippingInfo is the shipping form. All of Name, Address, Phone and Pincode
// must be non-blank before the wizard may leave the shipping step.
type ShippingInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Pincode     string `json:"pincode"`
	AddressType string `json:"address_type"`
}

// Complete reports whether every required shipping field is non-blank after
// trimming.
func (s ShippingInfo) Complete() bool {
	for _, f := range []string{s.Name, s.Address, s.Phone, s.Pincode} {
		if isBlank(f) {
			return false
		}
	}
	return true
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// CheckoutSession is a single run of the checkout wizard. It only carries the
// wizard state; totals and the delivery estimate are derived from the live
// cart on read.
type CheckoutSession struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Step        CheckoutStep `json:"step"`
	Shipping    ShippingInfo `json:"shipping"`
	Payment     string       `json:"payment"`
	OrderPlaced bool         `json:"order_placed"`
	OrderNumber string       `json:"order_number,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// OrderSnapshot is what gets handed to the order pipeline the moment "Place
// Order" is invoked: shipping, payment and the cart lines at that instant.
type OrderSnapshot struct {
	Shipping  ShippingInfo `json:"shipping"`
	Payment   string       `json:"payment"`
	CartItems []CartLine   `json:"cart_items"`
}
