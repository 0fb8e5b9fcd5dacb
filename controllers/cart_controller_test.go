package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	apperrors "github.com/printmate/storefront-backend/errors"
	"github.com/printmate/storefront-backend/middleware"
	"github.com/printmate/storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartService struct{ mock.Mock }

func (m *MockCartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}
func (m *MockCartService) AddItem(ctx context.Context, userID string, item models.CartLine) (*models.Cart, error) {
	args := m.Called(ctx, userID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}
func (m *MockCartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}
func (m *MockCartService) ClearCart(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// stubIdentity stands in for the identity middleware.
func stubIdentity(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func newCartRouter(svc ICartService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cc := NewCartController(svc)
	g := r.Group("/cart", stubIdentity(userID))
	g.GET("", cc.GetCart)
	g.POST("/items", cc.AddItem)
	g.DELETE("/items/:product_id", cc.RemoveItem)
	g.DELETE("", cc.ClearCart)
	return r
}

func TestGetCartController(t *testing.T) {
	mockSvc := new(MockCartService)
	mockSvc.On("GetCart", mock.Anything, "guest:abc").
		Return(&models.Cart{UserID: "guest:abc", Items: []models.CartLine{
			{ProductID: "p1", Title: "LaserJet M110", UnitPrice: 129.99, Quantity: 2},
		}}, nil).Once()
	r := newCartRouter(mockSvc, "guest:abc")

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 129.99, cart.Items[0].UnitPrice)
	mockSvc.AssertExpectations(t)
}

func TestAddItemController(t *testing.T) {
	t.Run("Defaults Quantity To One", func(t *testing.T) {
		mockSvc := new(MockCartService)
		mockSvc.On("AddItem", mock.Anything, "u1", models.CartLine{
			ProductID: "p1", Title: "Ink 678", UnitPrice: 14.5, Quantity: 1,
		}).Return(&models.Cart{UserID: "u1"}, nil).Once()
		r := newCartRouter(mockSvc, "u1")

		req := httptest.NewRequest(http.MethodPost, "/cart/items",
			strings.NewReader(`{"product_id":"p1","title":"Ink 678","price":14.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Rejects Missing Fields", func(t *testing.T) {
		r := newCartRouter(new(MockCartService), "u1")

		req := httptest.NewRequest(http.MethodPost, "/cart/items",
			strings.NewReader(`{"title":"Ink 678"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRemoveItemController(t *testing.T) {
	t.Run("Removed", func(t *testing.T) {
		mockSvc := new(MockCartService)
		mockSvc.On("RemoveItem", mock.Anything, "u1", "p1").
			Return(&models.Cart{UserID: "u1", Items: []models.CartLine{}}, nil).Once()
		r := newCartRouter(mockSvc, "u1")

		req := httptest.NewRequest(http.MethodDelete, "/cart/items/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing Cart", func(t *testing.T) {
		mockSvc := new(MockCartService)
		mockSvc.On("RemoveItem", mock.Anything, "u1", "p1").
			Return(nil, apperrors.New(http.StatusNotFound, "Cart not found", nil)).Once()
		r := newCartRouter(mockSvc, "u1")

		req := httptest.NewRequest(http.MethodDelete, "/cart/items/p1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Cart not found")
	})
}
