package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/printmate/storefront-backend/middleware"
	"github.com/printmate/storefront-backend/models"
)

type ICartService interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	AddItem(ctx context.Context, userID string, item models.CartLine) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

type AddItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type CartController struct {
	service ICartService
}

func NewCartController(service ICartService) *CartController {
	return &CartController{service: service}
}

// GetCart returns the current cart for the caller
func (cc *CartController) GetCart(c *gin.Context) {
	cart, err := cc.service.GetCart(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddItem adds or increments an item in the cart
func (cc *CartController) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := cc.service.AddItem(c.Request.Context(), c.GetString(middleware.UserIDKey), models.CartLine{
		ProductID: req.ProductID,
		Title:     req.Title,
		UnitPrice: req.Price,
		Image:     req.Image,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveItem removes a specific item from the cart
func (cc *CartController) RemoveItem(c *gin.Context) {
	cart, err := cc.service.RemoveItem(c.Request.Context(),
		c.GetString(middleware.UserIDKey), c.Param("product_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart removes all items from the cart
func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.service.ClearCart(c.Request.Context(), c.GetString(middleware.UserIDKey)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
