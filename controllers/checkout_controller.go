package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/printmate/storefront-backend/middleware"
	"github.com/printmate/storefront-backend/models"
	"github.com/printmate/storefront-backend/services"
)

type ICheckoutService interface {
	Start(ctx context.Context, userID string) (*models.CheckoutSession, error)
	Get(ctx context.Context, id, userID string) (*services.CheckoutView, error)
	ConfirmCart(ctx context.Context, id, userID string) (*services.CheckoutView, error)
	SubmitShipping(ctx context.Context, id, userID string, shipping models.ShippingInfo) (*services.CheckoutView, error)
	SelectPayment(ctx context.Context, id, userID, method string) (*services.CheckoutView, error)
	PlaceOrder(ctx context.Context, id, userID string) (*models.Order, error)
	GetOrder(ctx context.Context, orderNumber, userID string) (*models.Order, error)
}

type ShippingRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Pincode     string `json:"pincode"`
	AddressType string `json:"address_type"`
}

type PaymentRequest struct {
	Method string `json:"method"`
}

type CheckoutController struct {
	service ICheckoutService
}

func NewCheckoutController(service ICheckoutService) *CheckoutController {
	return &CheckoutController{service: service}
}

// Start handles POST /checkout: opens a wizard session at cart review.
func (cc *CheckoutController) Start(c *gin.Context) {
	session, err := cc.service.Start(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Get handles GET /checkout/:id: the session plus derived totals and the
// delivery estimate.
func (cc *CheckoutController) Get(c *gin.Context) {
	view, err := cc.service.Get(c.Request.Context(), c.Param("id"), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ConfirmCart handles POST /checkout/:id/confirm-cart
func (cc *CheckoutController) ConfirmCart(c *gin.Context) {
	view, err := cc.service.ConfirmCart(c.Request.Context(), c.Param("id"), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitShipping handles POST /checkout/:id/shipping
func (cc *CheckoutController) SubmitShipping(c *gin.Context) {
	var req ShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	view, err := cc.service.SubmitShipping(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.UserIDKey), models.ShippingInfo{
			Name:        req.Name,
			Address:     req.Address,
			Phone:       req.Phone,
			Pincode:     req.Pincode,
			AddressType: req.AddressType,
		})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectPayment handles POST /checkout/:id/payment
func (cc *CheckoutController) SelectPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	view, err := cc.service.SelectPayment(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.UserIDKey), req.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PlaceOrder handles POST /checkout/:id/place-order
func (cc *CheckoutController) PlaceOrder(c *gin.Context) {
	order, err := cc.service.PlaceOrder(c.Request.Context(), c.Param("id"), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order Placed Successfully!",
		"order_number": order.OrderNumber,
		"order":        order,
	})
}

// GetOrder handles GET /orders/:order_number
func (cc *CheckoutController) GetOrder(c *gin.Context) {
	order, err := cc.service.GetOrder(c.Request.Context(), c.Param("order_number"), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
