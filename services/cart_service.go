package services

import (
	"context"
	"net/http"

	apperrors "github.com/printmate/storefront-backend/errors"
	"github.com/printmate/storefront-backend/models"
)

type ICartRepository interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

type CartService struct {
	repo ICartRepository
}

func NewCartService(repo ICartRepository) *CartService {
	return &CartService{repo: repo}
}

// GetCart returns the caller's cart, empty rather than nil when none exists.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartLine{}}
	}
	return cart, nil
}

// AddItem adds a product to the cart. A line already holding the product has
// its quantity incremented instead of a second line being appended; the line
// quantity is clamped to MaxLineQuantity.
func (s *CartService) AddItem(ctx context.Context, userID string, item models.CartLine) (*models.Cart, error) {
	if item.ProductID == "" {
		return nil, apperrors.New(http.StatusBadRequest, "product_id is required", nil)
	}
	if item.Quantity < 1 {
		return nil, apperrors.New(http.StatusBadRequest, "quantity must be at least 1", nil)
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i, existing := range cart.Items {
		if existing.ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			if cart.Items[i].Quantity > models.MaxLineQuantity {
				cart.Items[i].Quantity = models.MaxLineQuantity
			}
			found = true
			break
		}
	}
	if !found {
		if item.Quantity > models.MaxLineQuantity {
			item.Quantity = models.MaxLineQuantity
		}
		cart.Items = append(cart.Items, item)
	}

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the line for a product, if present.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperrors.New(http.StatusNotFound, "cart not found", nil)
	}

	newItems := make([]models.CartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			newItems = append(newItems, item)
		}
	}
	cart.Items = newItems

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.repo.DeleteCart(ctx, userID)
}
