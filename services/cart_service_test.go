package services

import (
	"context"
	"testing"

	apperrors "github.com/printmate/storefront-backend/errors"
	"github.com/printmate/storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartRepo is an in-memory ICartRepository.
type fakeCartRepo struct {
	carts map[string]*models.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*models.Cart)}
}

func (f *fakeCartRepo) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, ok := f.carts[userID]
	if !ok {
		return nil, nil
	}
	copied := *cart
	copied.Items = append([]models.CartLine(nil), cart.Items...)
	return &copied, nil
}

func (f *fakeCartRepo) SaveCart(ctx context.Context, cart *models.Cart) error {
	f.carts[cart.UserID] = cart
	return nil
}

func (f *fakeCartRepo) DeleteCart(ctx context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()
	printer := models.CartLine{ProductID: "p1", Title: "LaserJet M110", UnitPrice: 129.99, Quantity: 1}

	t.Run("Repeated Add Increments One Line", func(t *testing.T) {
		svc := NewCartService(newFakeCartRepo())

		_, err := svc.AddItem(ctx, "u1", printer)
		require.NoError(t, err)
		cart, err := svc.AddItem(ctx, "u1", printer)
		require.NoError(t, err)

		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("Distinct Products Get Distinct Lines", func(t *testing.T) {
		svc := NewCartService(newFakeCartRepo())

		_, err := svc.AddItem(ctx, "u1", printer)
		require.NoError(t, err)
		cart, err := svc.AddItem(ctx, "u1", models.CartLine{ProductID: "p2", Title: "Ink 678", UnitPrice: 14.5, Quantity: 3})
		require.NoError(t, err)

		assert.Len(t, cart.Items, 2)
	})

	t.Run("Quantity Clamped To 99", func(t *testing.T) {
		svc := NewCartService(newFakeCartRepo())

		big := printer
		big.Quantity = 80
		_, err := svc.AddItem(ctx, "u1", big)
		require.NoError(t, err)
		cart, err := svc.AddItem(ctx, "u1", big)
		require.NoError(t, err)

		assert.Equal(t, models.MaxLineQuantity, cart.Items[0].Quantity)
	})

	t.Run("Zero Quantity Rejected", func(t *testing.T) {
		svc := NewCartService(newFakeCartRepo())

		bad := printer
		bad.Quantity = 0
		_, err := svc.AddItem(ctx, "u1", bad)

		require.Error(t, err)
		assert.Equal(t, 400, apperrors.From(err).Code)
	})
}

func TestCartServiceGetCart(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newFakeCartRepo())

	cart, err := svc.GetCart(ctx, "nobody")

	require.NoError(t, err)
	assert.Equal(t, "nobody", cart.UserID)
	assert.Empty(t, cart.Items)
}

func TestCartServiceRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes The Line", func(t *testing.T) {
		svc := NewCartService(newFakeCartRepo())
		_, err := svc.AddItem(ctx, "u1", models.CartLine{ProductID: "p1", Title: "Printer", UnitPrice: 100, Quantity: 1})
		require.NoError(t, err)

		cart, err := svc.RemoveItem(ctx, "u1", "p1")

		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("Missing Cart Is Not Found", func(t *testing.T) {
		svc := NewCartService(newFakeCartRepo())

		_, err := svc.RemoveItem(ctx, "u1", "p1")

		require.Error(t, err)
		assert.Equal(t, 404, apperrors.From(err).Code)
	})
}
