package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	apperrors "github.com/printmate/storefront-backend/errors"
	"github.com/printmate/storefront-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const relatedProductsLimit = 4

type IProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]*models.Product, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// ListProductsParams mirrors the storefront's listing controls: category
// page, title search and the three sort modes.
type ListProductsParams struct {
	Category string
	Query    string
	Sort     string // "title" | "price-asc" | "price-desc"
	Limit    int64
	Offset   int64
}

type CatalogService struct {
	repo IProductRepository
}

func NewCatalogService(repo IProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListProducts(ctx context.Context, params ListProductsParams) ([]*models.Product, int64, error) {
	filter := bson.M{}
	if params.Category != "" {
		if !models.IsValidCategory(params.Category) {
			return nil, 0, apperrors.New(http.StatusBadRequest, "unknown category", nil)
		}
		filter["category"] = params.Category
	}
	if params.Query != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: params.Query, Options: "i"}}
	}

	findOptions := options.Find()
	switch params.Sort {
	case "", "title":
		findOptions.SetSort(bson.D{{Key: "title", Value: 1}})
	case "price-asc":
		findOptions.SetSort(bson.D{{Key: "price", Value: 1}})
	case "price-desc":
		findOptions.SetSort(bson.D{{Key: "price", Value: -1}})
	default:
		return nil, 0, apperrors.New(http.StatusBadRequest, "unknown sort", nil)
	}

	if params.Limit > 0 {
		findOptions.SetLimit(params.Limit)
	}
	if params.Offset > 0 {
		findOptions.SetSkip(params.Offset)
	}

	products, err := s.repo.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.New(http.StatusNotFound, "Product not found", nil)
	}
	return product, nil
}

// RelatedProducts returns up to four products sharing the category, the
// product itself excluded.
func (s *CatalogService) RelatedProducts(ctx context.Context, id uuid.UUID) ([]*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"category": product.Category,
		"_id":      bson.M{"$ne": product.ID},
	}
	findOptions := options.Find().SetLimit(relatedProductsLimit)
	return s.repo.Find(ctx, filter, findOptions)
}
