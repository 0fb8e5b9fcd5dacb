package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	apperrors "github.com/printmate/storefront-backend/errors"
	"github.com/printmate/storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeProductRepo records the last query it was asked to run.
type fakeProductRepo struct {
	products    []*models.Product
	lastFilter  bson.M
	lastOptions *options.FindOptions
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]*models.Product, error) {
	f.lastFilter = filter
	f.lastOptions = findOptions
	return f.products, nil
}

func (f *fakeProductRepo) Count(ctx context.Context, filter bson.M) (int64, error) {
	return int64(len(f.products)), nil
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Filters By Category And Search", func(t *testing.T) {
		repo := &fakeProductRepo{products: []*models.Product{{Title: "LaserJet M110"}}}
		svc := NewCatalogService(repo)

		products, total, err := svc.ListProducts(ctx, ListProductsParams{
			Category: models.CategoryLaserPrinters,
			Query:    "laser",
		})

		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, models.CategoryLaserPrinters, repo.lastFilter["category"])
		assert.Contains(t, repo.lastFilter, "title")
	})

	t.Run("Unknown Category Rejected", func(t *testing.T) {
		svc := NewCatalogService(&fakeProductRepo{})

		_, _, err := svc.ListProducts(ctx, ListProductsParams{Category: "furniture"})

		require.Error(t, err)
		assert.Equal(t, 400, apperrors.From(err).Code)
	})

	t.Run("Unknown Sort Rejected", func(t *testing.T) {
		svc := NewCatalogService(&fakeProductRepo{})

		_, _, err := svc.ListProducts(ctx, ListProductsParams{Sort: "rating"})

		require.Error(t, err)
		assert.Equal(t, 400, apperrors.From(err).Code)
	})

	t.Run("Price Sort Descending", func(t *testing.T) {
		repo := &fakeProductRepo{}
		svc := NewCatalogService(repo)

		_, _, err := svc.ListProducts(ctx, ListProductsParams{Sort: "price-desc"})

		require.NoError(t, err)
		require.NotNil(t, repo.lastOptions.Sort)
		sort := repo.lastOptions.Sort.(bson.D)
		assert.Equal(t, "price", sort[0].Key)
		assert.Equal(t, -1, sort[0].Value)
	})
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := &fakeProductRepo{products: []*models.Product{{ID: id, Title: "Ink 678", Category: models.CategoryInkTonerPaper}}}
	svc := NewCatalogService(repo)

	t.Run("Found", func(t *testing.T) {
		product, err := svc.GetProduct(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Ink 678", product.Title)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := svc.GetProduct(ctx, uuid.New())

		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Product not found", appErr.Message)
	})
}

func TestRelatedProducts(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := &fakeProductRepo{products: []*models.Product{{ID: id, Title: "Ink 678", Category: models.CategoryInkTonerPaper}}}
	svc := NewCatalogService(repo)

	_, err := svc.RelatedProducts(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, models.CategoryInkTonerPaper, repo.lastFilter["category"])
	assert.Equal(t, bson.M{"$ne": id}, repo.lastFilter["_id"])
	require.NotNil(t, repo.lastOptions.Limit)
	assert.Equal(t, int64(relatedProductsLimit), *repo.lastOptions.Limit)
}
