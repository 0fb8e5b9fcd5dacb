package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/printmate/storefront-backend/errors"
	"github.com/printmate/storefront-backend/logger"
	"github.com/printmate/storefront-backend/models"
	"go.uber.org/zap"
)

type ICheckoutRepository interface {
	GetSession(ctx context.Context, id string) (*models.CheckoutSession, error)
	SaveSession(ctx context.Context, session *models.CheckoutSession) error
}

type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
}

// IOrderPublisher is the external collaborator notified when an order is
// placed. Publishing is fire-and-forget.
type IOrderPublisher interface {
	SendOrderPlacedEvent(ctx context.Context, event models.OrderPlacedEvent) error
}

// CheckoutView is a wizard session plus everything derived from the live
// cart: the lines, the price breakdown and the delivery estimate.
type CheckoutView struct {
	Session          *models.CheckoutSession `json:"session"`
	Items            []models.CartLine       `json:"items"`
	Totals           Totals                  `json:"totals"`
	DeliveryEstimate string                  `json:"delivery_estimate,omitempty"`
}

type CheckoutService struct {
	sessions  ICheckoutRepository
	carts     ICartRepository
	orders    IOrderRepository
	publisher IOrderPublisher
}

func NewCheckoutService(sessions ICheckoutRepository, carts ICartRepository, orders IOrderRepository, publisher IOrderPublisher) *CheckoutService {
	return &CheckoutService{
		sessions:  sessions,
		carts:     carts,
		orders:    orders,
		publisher: publisher,
	}
}

// Start opens a new wizard session at the cart review step.
func (s *CheckoutService) Start(ctx context.Context, userID string) (*models.CheckoutSession, error) {
	session := &models.CheckoutSession{
		ID:     uuid.NewString(),
		UserID: userID,
		Step:   models.StepCartReview,
		Shipping: models.ShippingInfo{
			AddressType: models.AddressTypeHome,
		},
		Payment:   models.PaymentCOD,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the session with its derived view.
func (s *CheckoutService) Get(ctx context.Context, id, userID string) (*CheckoutView, error) {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// ConfirmCart moves Cart Review → Shipping Details. Refused while the cart
// is empty.
func (s *CheckoutService) ConfirmCart(ctx context.Context, id, userID string) (*CheckoutView, error) {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepCartReview {
		return nil, stepConflict(session)
	}

	lines, err := s.cartLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperrors.New(http.StatusConflict, "Your cart is empty.", nil)
	}

	session.Step = models.StepShippingDetails
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// SubmitShipping moves Shipping Details → Payment Method once every required
// field is filled. On incomplete input the step does not move.
func (s *CheckoutService) SubmitShipping(ctx context.Context, id, userID string, shipping models.ShippingInfo) (*CheckoutView, error) {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepShippingDetails {
		return nil, stepConflict(session)
	}

	shipping.Pincode = normalizePincode(shipping.Pincode)
	if shipping.AddressType == "" {
		shipping.AddressType = models.AddressTypeHome
	}
	switch shipping.AddressType {
	case models.AddressTypeHome, models.AddressTypeWork, models.AddressTypeOther:
	default:
		return nil, apperrors.New(http.StatusBadRequest, "unknown address type", nil)
	}

	if !shipping.Complete() {
		return nil, apperrors.ErrShippingIncomplete
	}

	session.Shipping = shipping
	session.Step = models.StepPaymentMethod
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// SelectPayment moves Payment Method → Order Summary. Only COD is accepted;
// UPI is listed but not selectable yet.
func (s *CheckoutService) SelectPayment(ctx context.Context, id, userID, method string) (*CheckoutView, error) {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPaymentMethod {
		return nil, stepConflict(session)
	}

	switch method {
	case "", models.PaymentCOD:
		session.Payment = models.PaymentCOD
	case models.PaymentUPI:
		return nil, apperrors.New(http.StatusBadRequest, "UPI / Net Banking is not available yet", nil)
	default:
		return nil, apperrors.New(http.StatusBadRequest, "unknown payment method", nil)
	}

	session.Step = models.StepOrderSummary
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// PlaceOrder moves Order Summary → Order Confirmation exactly once: it
// snapshots the cart, persists the order, publishes the order-placed event
// and clears the cart.
func (s *CheckoutService) PlaceOrder(ctx context.Context, id, userID string) (*models.Order, error) {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if session.OrderPlaced {
		return nil, apperrors.New(http.StatusConflict, "Order already placed", nil)
	}
	if session.Step != models.StepOrderSummary {
		return nil, stepConflict(session)
	}

	lines, err := s.cartLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperrors.New(http.StatusConflict, "Your cart is empty.", nil)
	}

	snapshot := models.OrderSnapshot{
		Shipping:  session.Shipping,
		Payment:   session.Payment,
		CartItems: lines,
	}
	totals := ComputeTotals(lines)
	orderNumber := "PMO" + GenerateRandomCode(6)

	order := &models.Order{
		ID:          uuid.New(),
		OrderNumber: orderNumber,
		UserID:      userID,

		Subtotal:    totals.Subtotal,
		ShippingFee: totals.ShippingFee,
		Tax:         totals.Tax,
		Total:       totals.Total,

		Payment: session.Payment,

		ShipName:        session.Shipping.Name,
		ShipAddress:     session.Shipping.Address,
		ShipPhone:       session.Shipping.Phone,
		ShipPincode:     session.Shipping.Pincode,
		ShipAddressType: session.Shipping.AddressType,

		Status: "placed",
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Title:     line.Title,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	event := models.OrderPlacedEvent{
		Event:       "order.placed",
		OrderID:     order.ID.String(),
		OrderNumber: orderNumber,
		UserID:      userID,
		Snapshot:    snapshot,
		Total:       totals.Total,
		Timestamp:   time.Now(),
	}
	if err := s.publisher.SendOrderPlacedEvent(ctx, event); err != nil {
		// Fire-and-forget: the order is already persisted.
		logger.Error(ctx, "failed to publish order placed event", err,
			zap.String("order_number", orderNumber))
	}

	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		logger.Warn(ctx, "failed to clear cart after order placement",
			zap.String("user_id", userID), zap.Error(err))
	}

	session.Step = models.StepOrderConfirmation
	session.OrderPlaced = true
	session.OrderNumber = orderNumber
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns a placed order, owner-only.
func (s *CheckoutService) GetOrder(ctx context.Context, orderNumber, userID string) (*models.Order, error) {
	order, err := s.orders.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, apperrors.New(http.StatusNotFound, "Order not found", err)
	}
	if order.UserID != userID {
		return nil, apperrors.New(http.StatusNotFound, "Order not found", nil)
	}
	return order, nil
}

func (s *CheckoutService) ownedSession(ctx context.Context, id, userID string) (*models.CheckoutSession, error) {
	session, err := s.sessions.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, apperrors.New(http.StatusNotFound, "Checkout session not found", nil)
	}
	return session, nil
}

func (s *CheckoutService) cartLines(ctx context.Context, userID string) ([]models.CartLine, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return []models.CartLine{}, nil
	}
	return cart.Items, nil
}

func (s *CheckoutService) view(ctx context.Context, session *models.CheckoutSession) (*CheckoutView, error) {
	lines, err := s.cartLines(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	return &CheckoutView{
		Session:          session,
		Items:            lines,
		Totals:           ComputeTotals(lines),
		DeliveryEstimate: EstimateDelivery(session.Shipping.Pincode),
	}, nil
}

func stepConflict(session *models.CheckoutSession) error {
	return apperrors.New(http.StatusConflict,
		fmt.Sprintf("checkout is at the %s step", session.Step), nil)
}

// normalizePincode keeps digits only, capped at 6, matching the input mask
// the shipping form applies.
func normalizePincode(pincode string) string {
	var b strings.Builder
	for _, r := range pincode {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 6 {
				break
			}
		}
	}
	return b.String()
}
